// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// A2pRegistrationsColumns holds the columns for the "a2p_registrations" table.
	A2pRegistrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"unregistered", "brand_registered", "campaign_registered", "number_assigned"}, Default: "unregistered"},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "ein", Type: field.TypeString, Nullable: true},
		{Name: "vertical", Type: field.TypeString, Nullable: true},
		{Name: "contact_name", Type: field.TypeString, Nullable: true},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "subaccount_sid", Type: field.TypeString, Nullable: true},
		{Name: "brand_sid", Type: field.TypeString, Nullable: true},
		{Name: "campaign_sid", Type: field.TypeString, Nullable: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// A2pRegistrationsTable holds the schema information for the "a2p_registrations" table.
	A2pRegistrationsTable = &schema.Table{
		Name:       "a2p_registrations",
		Columns:    A2pRegistrationsColumns,
		PrimaryKey: []*schema.Column{A2pRegistrationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "a2p_registrations_users_a2p_registration",
				Columns:    []*schema.Column{A2pRegistrationsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "a2pregistration_status",
				Unique:  false,
				Columns: []*schema.Column{A2pRegistrationsColumns[1]},
			},
		},
	}
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "paused", "completed"}, Default: "draft"},
		{Name: "from_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "drip_batch_size", Type: field.TypeInt, Default: 100},
		{Name: "drip_interval_days", Type: field.TypeInt, Default: 3},
		{Name: "message_intervals", Type: field.TypeJSON},
		{Name: "last_batch_admitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_leads", Type: field.TypeInt, Default: 0},
		{Name: "sent_count", Type: field.TypeInt, Default: 0},
		{Name: "delivered_count", Type: field.TypeInt, Default: 0},
		{Name: "reply_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaigns_users_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_user_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[15]},
			},
			{
				Name:    "campaign_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[2]},
			},
			{
				Name:    "campaign_created_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[13]},
			},
		},
	}
	// CampaignEventsColumns holds the columns for the "campaign_events" table.
	CampaignEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeInt},
	}
	// CampaignEventsTable holds the schema information for the "campaign_events" table.
	CampaignEventsTable = &schema.Table{
		Name:       "campaign_events",
		Columns:    CampaignEventsColumns,
		PrimaryKey: []*schema.Column{CampaignEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaign_events_campaigns_events",
				Columns:    []*schema.Column{CampaignEventsColumns[5]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campaignevent_campaign_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignEventsColumns[5], CampaignEventsColumns[4]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "phone_number", Type: field.TypeString, Size: 20},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"uncontacted", "queued", "1st_sent", "2nd_sent", "3rd_sent", "replied", "opted_out", "failed"}, Default: "uncontacted"},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "last_message_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeInt},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_campaigns_contacts",
				Columns:    []*schema.Column{ContactsColumns[10]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_campaign_id_status",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[10], ContactsColumns[4]},
			},
			{
				Name:    "contact_phone_number",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[2]},
			},
			{
				Name:    "contact_last_message_sent_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[6]},
			},
		},
	}
	// MessageTemplatesColumns holds the columns for the "message_templates" table.
	MessageTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeInt},
	}
	// MessageTemplatesTable holds the schema information for the "message_templates" table.
	MessageTemplatesTable = &schema.Table{
		Name:       "message_templates",
		Columns:    MessageTemplatesColumns,
		PrimaryKey: []*schema.Column{MessageTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_templates_campaigns_templates",
				Columns:    []*schema.Column{MessageTemplatesColumns[4]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_template_campaign_step",
				Unique:  true,
				Columns: []*schema.Column{MessageTemplatesColumns[4], MessageTemplatesColumns[1]},
			},
		},
	}
	// SmsMessagesColumns holds the columns for the "sms_messages" table.
	SmsMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"outbound", "inbound"}},
		{Name: "sequence_number", Type: field.TypeInt, Nullable: true},
		{Name: "message_body", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "delivered", "failed", "undelivered", "received"}, Default: "pending"},
		{Name: "twilio_sid", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeInt, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeInt},
		{Name: "contact_id", Type: field.TypeInt, Nullable: true},
	}
	// SmsMessagesTable holds the schema information for the "sms_messages" table.
	SmsMessagesTable = &schema.Table{
		Name:       "sms_messages",
		Columns:    SmsMessagesColumns,
		PrimaryKey: []*schema.Column{SmsMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sms_messages_campaigns_messages",
				Columns:    []*schema.Column{SmsMessagesColumns[11]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "sms_messages_contacts_messages",
				Columns:    []*schema.Column{SmsMessagesColumns[12]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "smsmessage_campaign_id",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[11]},
			},
			{
				Name:    "smsmessage_contact_id",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[12]},
			},
			{
				Name:    "smsmessage_twilio_sid",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[5]},
			},
			{
				Name:    "smsmessage_direction_status",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[1], SmsMessagesColumns[4]},
			},
			{
				Name:    "smsmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[10]},
			},
		},
	}
	// ScheduledSendsColumns holds the columns for the "scheduled_sends" table.
	ScheduledSendsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "scheduled_for", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "sent", "canceled", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeInt},
		{Name: "contact_id", Type: field.TypeInt},
	}
	// ScheduledSendsTable holds the schema information for the "scheduled_sends" table.
	ScheduledSendsTable = &schema.Table{
		Name:       "scheduled_sends",
		Columns:    ScheduledSendsColumns,
		PrimaryKey: []*schema.Column{ScheduledSendsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_sends_campaigns_scheduled_sends",
				Columns:    []*schema.Column{ScheduledSendsColumns[8]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "scheduled_sends_contacts_scheduled_sends",
				Columns:    []*schema.Column{ScheduledSendsColumns[9]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_send_due",
				Unique:  false,
				Columns: []*schema.Column{ScheduledSendsColumns[3], ScheduledSendsColumns[2]},
			},
			{
				Name:    "idx_send_contact_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledSendsColumns[9], ScheduledSendsColumns[3]},
			},
			{
				Name:    "idx_send_pending_unique",
				Unique:  true,
				Columns: []*schema.Column{ScheduledSendsColumns[8], ScheduledSendsColumns[9], ScheduledSendsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'pending'",
				},
			},
		},
	}
	// TwilioAccountsColumns holds the columns for the "twilio_accounts" table.
	TwilioAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_sid", Type: field.TypeString},
		{Name: "auth_token", Type: field.TypeString},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// TwilioAccountsTable holds the schema information for the "twilio_accounts" table.
	TwilioAccountsTable = &schema.Table{
		Name:       "twilio_accounts",
		Columns:    TwilioAccountsColumns,
		PrimaryKey: []*schema.Column{TwilioAccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "twilio_accounts_users_twilio_account",
				Columns:    []*schema.Column{TwilioAccountsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// UserBillingsColumns holds the columns for the "user_billings" table.
	UserBillingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "canceled", "past_due"}, Default: "inactive"},
		{Name: "credits_remaining", Type: field.TypeInt, Default: 0},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "renew_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// UserBillingsTable holds the schema information for the "user_billings" table.
	UserBillingsTable = &schema.Table{
		Name:       "user_billings",
		Columns:    UserBillingsColumns,
		PrimaryKey: []*schema.Column{UserBillingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_billings_users_billing",
				Columns:    []*schema.Column{UserBillingsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userbilling_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{UserBillingsColumns[4]},
			},
			{
				Name:    "userbilling_status",
				Unique:  false,
				Columns: []*schema.Column{UserBillingsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		A2pRegistrationsTable,
		CampaignsTable,
		CampaignEventsTable,
		ContactsTable,
		MessageTemplatesTable,
		SmsMessagesTable,
		ScheduledSendsTable,
		TwilioAccountsTable,
		UsersTable,
		UserBillingsTable,
	}
)

func init() {
	A2pRegistrationsTable.ForeignKeys[0].RefTable = UsersTable
	CampaignsTable.ForeignKeys[0].RefTable = UsersTable
	CampaignEventsTable.ForeignKeys[0].RefTable = CampaignsTable
	ContactsTable.ForeignKeys[0].RefTable = CampaignsTable
	MessageTemplatesTable.ForeignKeys[0].RefTable = CampaignsTable
	SmsMessagesTable.ForeignKeys[0].RefTable = CampaignsTable
	SmsMessagesTable.ForeignKeys[1].RefTable = ContactsTable
	ScheduledSendsTable.ForeignKeys[0].RefTable = CampaignsTable
	ScheduledSendsTable.ForeignKeys[1].RefTable = ContactsTable
	TwilioAccountsTable.ForeignKeys[0].RefTable = UsersTable
	UserBillingsTable.ForeignKeys[0].RefTable = UsersTable
}
