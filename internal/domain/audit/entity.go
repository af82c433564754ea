package audit

import "time"

// Entry is one audit-log row. Written in the same transaction as the
// mutation it records.
type Entry struct {
	ID         string
	CompanyID  string
	ActorID    string
	Action     Action
	EntityType string
	EntityID   string
	Detail     map[string]interface{}
	CreatedAt  time.Time
}

type Action string

const (
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionConfirm    Action = "confirm"
	ActionDelete     Action = "delete"
	ActionBulkCreate Action = "bulk_create"
	ActionDuplicate  Action = "duplicate"
)
