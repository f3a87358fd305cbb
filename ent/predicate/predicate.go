// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// A2PRegistration is the predicate function for a2pregistration builders.
type A2PRegistration func(*sql.Selector)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// CampaignEvent is the predicate function for campaignevent builders.
type CampaignEvent func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// MessageTemplate is the predicate function for messagetemplate builders.
type MessageTemplate func(*sql.Selector)

// SMSMessage is the predicate function for smsmessage builders.
type SMSMessage func(*sql.Selector)

// ScheduledSend is the predicate function for scheduledsend builders.
type ScheduledSend func(*sql.Selector)

// TwilioAccount is the predicate function for twilioaccount builders.
type TwilioAccount func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserBilling is the predicate function for userbilling builders.
type UserBilling func(*sql.Selector)
