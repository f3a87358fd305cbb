// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/campaignevent"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/messagetemplate"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/schema"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/ent/twilioaccount"
	"github.com/danielmv/leadrevive/ent/user"
	"github.com/danielmv/leadrevive/ent/userbilling"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	a2pregistrationFields := schema.A2PRegistration{}.Fields()
	_ = a2pregistrationFields
	// a2pregistrationDescUserID is the schema descriptor for user_id field.
	a2pregistrationDescUserID := a2pregistrationFields[0].Descriptor()
	// a2pregistration.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	a2pregistration.UserIDValidator = a2pregistrationDescUserID.Validators[0].(func(int) error)
	// a2pregistrationDescPhoneNumber is the schema descriptor for phone_number field.
	a2pregistrationDescPhoneNumber := a2pregistrationFields[10].Descriptor()
	// a2pregistration.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	a2pregistration.PhoneNumberValidator = a2pregistrationDescPhoneNumber.Validators[0].(func(string) error)
	// a2pregistrationDescCreatedAt is the schema descriptor for created_at field.
	a2pregistrationDescCreatedAt := a2pregistrationFields[11].Descriptor()
	// a2pregistration.DefaultCreatedAt holds the default value on creation for the created_at field.
	a2pregistration.DefaultCreatedAt = a2pregistrationDescCreatedAt.Default.(func() time.Time)
	// a2pregistrationDescUpdatedAt is the schema descriptor for updated_at field.
	a2pregistrationDescUpdatedAt := a2pregistrationFields[12].Descriptor()
	// a2pregistration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	a2pregistration.DefaultUpdatedAt = a2pregistrationDescUpdatedAt.Default.(func() time.Time)
	// a2pregistration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	a2pregistration.UpdateDefaultUpdatedAt = a2pregistrationDescUpdatedAt.UpdateDefault.(func() time.Time)
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescUserID is the schema descriptor for user_id field.
	campaignDescUserID := campaignFields[0].Descriptor()
	// campaign.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	campaign.UserIDValidator = campaignDescUserID.Validators[0].(func(int) error)
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[1].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = func() func(string) error {
		validators := campaignDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// campaignDescFromNumber is the schema descriptor for from_number field.
	campaignDescFromNumber := campaignFields[3].Descriptor()
	// campaign.FromNumberValidator is a validator for the "from_number" field. It is called by the builders before save.
	campaign.FromNumberValidator = campaignDescFromNumber.Validators[0].(func(string) error)
	// campaignDescDripBatchSize is the schema descriptor for drip_batch_size field.
	campaignDescDripBatchSize := campaignFields[4].Descriptor()
	// campaign.DefaultDripBatchSize holds the default value on creation for the drip_batch_size field.
	campaign.DefaultDripBatchSize = campaignDescDripBatchSize.Default.(int)
	// campaign.DripBatchSizeValidator is a validator for the "drip_batch_size" field. It is called by the builders before save.
	campaign.DripBatchSizeValidator = campaignDescDripBatchSize.Validators[0].(func(int) error)
	// campaignDescDripIntervalDays is the schema descriptor for drip_interval_days field.
	campaignDescDripIntervalDays := campaignFields[5].Descriptor()
	// campaign.DefaultDripIntervalDays holds the default value on creation for the drip_interval_days field.
	campaign.DefaultDripIntervalDays = campaignDescDripIntervalDays.Default.(int)
	// campaign.DripIntervalDaysValidator is a validator for the "drip_interval_days" field. It is called by the builders before save.
	campaign.DripIntervalDaysValidator = campaignDescDripIntervalDays.Validators[0].(func(int) error)
	// campaignDescTotalLeads is the schema descriptor for total_leads field.
	campaignDescTotalLeads := campaignFields[8].Descriptor()
	// campaign.DefaultTotalLeads holds the default value on creation for the total_leads field.
	campaign.DefaultTotalLeads = campaignDescTotalLeads.Default.(int)
	// campaign.TotalLeadsValidator is a validator for the "total_leads" field. It is called by the builders before save.
	campaign.TotalLeadsValidator = campaignDescTotalLeads.Validators[0].(func(int) error)
	// campaignDescSentCount is the schema descriptor for sent_count field.
	campaignDescSentCount := campaignFields[9].Descriptor()
	// campaign.DefaultSentCount holds the default value on creation for the sent_count field.
	campaign.DefaultSentCount = campaignDescSentCount.Default.(int)
	// campaign.SentCountValidator is a validator for the "sent_count" field. It is called by the builders before save.
	campaign.SentCountValidator = campaignDescSentCount.Validators[0].(func(int) error)
	// campaignDescDeliveredCount is the schema descriptor for delivered_count field.
	campaignDescDeliveredCount := campaignFields[10].Descriptor()
	// campaign.DefaultDeliveredCount holds the default value on creation for the delivered_count field.
	campaign.DefaultDeliveredCount = campaignDescDeliveredCount.Default.(int)
	// campaign.DeliveredCountValidator is a validator for the "delivered_count" field. It is called by the builders before save.
	campaign.DeliveredCountValidator = campaignDescDeliveredCount.Validators[0].(func(int) error)
	// campaignDescReplyCount is the schema descriptor for reply_count field.
	campaignDescReplyCount := campaignFields[11].Descriptor()
	// campaign.DefaultReplyCount holds the default value on creation for the reply_count field.
	campaign.DefaultReplyCount = campaignDescReplyCount.Default.(int)
	// campaign.ReplyCountValidator is a validator for the "reply_count" field. It is called by the builders before save.
	campaign.ReplyCountValidator = campaignDescReplyCount.Validators[0].(func(int) error)
	// campaignDescFailedCount is the schema descriptor for failed_count field.
	campaignDescFailedCount := campaignFields[12].Descriptor()
	// campaign.DefaultFailedCount holds the default value on creation for the failed_count field.
	campaign.DefaultFailedCount = campaignDescFailedCount.Default.(int)
	// campaign.FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	campaign.FailedCountValidator = campaignDescFailedCount.Validators[0].(func(int) error)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[13].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[14].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	campaigneventFields := schema.CampaignEvent{}.Fields()
	_ = campaigneventFields
	// campaigneventDescCampaignID is the schema descriptor for campaign_id field.
	campaigneventDescCampaignID := campaigneventFields[0].Descriptor()
	// campaignevent.CampaignIDValidator is a validator for the "campaign_id" field. It is called by the builders before save.
	campaignevent.CampaignIDValidator = campaigneventDescCampaignID.Validators[0].(func(int) error)
	// campaigneventDescEventType is the schema descriptor for event_type field.
	campaigneventDescEventType := campaigneventFields[2].Descriptor()
	// campaignevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	campaignevent.EventTypeValidator = campaigneventDescEventType.Validators[0].(func(string) error)
	// campaigneventDescCreatedAt is the schema descriptor for created_at field.
	campaigneventDescCreatedAt := campaigneventFields[4].Descriptor()
	// campaignevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaignevent.DefaultCreatedAt = campaigneventDescCreatedAt.Default.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescCampaignID is the schema descriptor for campaign_id field.
	contactDescCampaignID := contactFields[0].Descriptor()
	// contact.CampaignIDValidator is a validator for the "campaign_id" field. It is called by the builders before save.
	contact.CampaignIDValidator = contactDescCampaignID.Validators[0].(func(int) error)
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactFields[1].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = func() func(string) error {
		validators := contactDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescPhoneNumber is the schema descriptor for phone_number field.
	contactDescPhoneNumber := contactFields[2].Descriptor()
	// contact.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	contact.PhoneNumberValidator = func() func(string) error {
		validators := contactDescPhoneNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(phone_number string) error {
			for _, fn := range fns {
				if err := fn(phone_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescMessageCount is the schema descriptor for message_count field.
	contactDescMessageCount := contactFields[5].Descriptor()
	// contact.DefaultMessageCount holds the default value on creation for the message_count field.
	contact.DefaultMessageCount = contactDescMessageCount.Default.(int)
	// contact.MessageCountValidator is a validator for the "message_count" field. It is called by the builders before save.
	contact.MessageCountValidator = contactDescMessageCount.Validators[0].(func(int) error)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[8].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[9].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	messagetemplateFields := schema.MessageTemplate{}.Fields()
	_ = messagetemplateFields
	// messagetemplateDescCampaignID is the schema descriptor for campaign_id field.
	messagetemplateDescCampaignID := messagetemplateFields[0].Descriptor()
	// messagetemplate.CampaignIDValidator is a validator for the "campaign_id" field. It is called by the builders before save.
	messagetemplate.CampaignIDValidator = messagetemplateDescCampaignID.Validators[0].(func(int) error)
	// messagetemplateDescSequenceNumber is the schema descriptor for sequence_number field.
	messagetemplateDescSequenceNumber := messagetemplateFields[1].Descriptor()
	// messagetemplate.SequenceNumberValidator is a validator for the "sequence_number" field. It is called by the builders before save.
	messagetemplate.SequenceNumberValidator = func() func(int) error {
		validators := messagetemplateDescSequenceNumber.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(sequence_number int) error {
			for _, fn := range fns {
				if err := fn(sequence_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messagetemplateDescBody is the schema descriptor for body field.
	messagetemplateDescBody := messagetemplateFields[2].Descriptor()
	// messagetemplate.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	messagetemplate.BodyValidator = messagetemplateDescBody.Validators[0].(func(string) error)
	// messagetemplateDescCreatedAt is the schema descriptor for created_at field.
	messagetemplateDescCreatedAt := messagetemplateFields[3].Descriptor()
	// messagetemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagetemplate.DefaultCreatedAt = messagetemplateDescCreatedAt.Default.(func() time.Time)
	smsmessageFields := schema.SMSMessage{}.Fields()
	_ = smsmessageFields
	// smsmessageDescCampaignID is the schema descriptor for campaign_id field.
	smsmessageDescCampaignID := smsmessageFields[0].Descriptor()
	// smsmessage.CampaignIDValidator is a validator for the "campaign_id" field. It is called by the builders before save.
	smsmessage.CampaignIDValidator = smsmessageDescCampaignID.Validators[0].(func(int) error)
	// smsmessageDescMessageBody is the schema descriptor for message_body field.
	smsmessageDescMessageBody := smsmessageFields[4].Descriptor()
	// smsmessage.MessageBodyValidator is a validator for the "message_body" field. It is called by the builders before save.
	smsmessage.MessageBodyValidator = smsmessageDescMessageBody.Validators[0].(func(string) error)
	// smsmessageDescTwilioSid is the schema descriptor for twilio_sid field.
	smsmessageDescTwilioSid := smsmessageFields[6].Descriptor()
	// smsmessage.TwilioSidValidator is a validator for the "twilio_sid" field. It is called by the builders before save.
	smsmessage.TwilioSidValidator = smsmessageDescTwilioSid.Validators[0].(func(string) error)
	// smsmessageDescCreatedAt is the schema descriptor for created_at field.
	smsmessageDescCreatedAt := smsmessageFields[11].Descriptor()
	// smsmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	smsmessage.DefaultCreatedAt = smsmessageDescCreatedAt.Default.(func() time.Time)
	scheduledsendFields := schema.ScheduledSend{}.Fields()
	_ = scheduledsendFields
	// scheduledsendDescCampaignID is the schema descriptor for campaign_id field.
	scheduledsendDescCampaignID := scheduledsendFields[0].Descriptor()
	// scheduledsend.CampaignIDValidator is a validator for the "campaign_id" field. It is called by the builders before save.
	scheduledsend.CampaignIDValidator = scheduledsendDescCampaignID.Validators[0].(func(int) error)
	// scheduledsendDescContactID is the schema descriptor for contact_id field.
	scheduledsendDescContactID := scheduledsendFields[1].Descriptor()
	// scheduledsend.ContactIDValidator is a validator for the "contact_id" field. It is called by the builders before save.
	scheduledsend.ContactIDValidator = scheduledsendDescContactID.Validators[0].(func(int) error)
	// scheduledsendDescSequenceNumber is the schema descriptor for sequence_number field.
	scheduledsendDescSequenceNumber := scheduledsendFields[2].Descriptor()
	// scheduledsend.SequenceNumberValidator is a validator for the "sequence_number" field. It is called by the builders before save.
	scheduledsend.SequenceNumberValidator = func() func(int) error {
		validators := scheduledsendDescSequenceNumber.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(sequence_number int) error {
			for _, fn := range fns {
				if err := fn(sequence_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scheduledsendDescCreatedAt is the schema descriptor for created_at field.
	scheduledsendDescCreatedAt := scheduledsendFields[7].Descriptor()
	// scheduledsend.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledsend.DefaultCreatedAt = scheduledsendDescCreatedAt.Default.(func() time.Time)
	// scheduledsendDescUpdatedAt is the schema descriptor for updated_at field.
	scheduledsendDescUpdatedAt := scheduledsendFields[8].Descriptor()
	// scheduledsend.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduledsend.DefaultUpdatedAt = scheduledsendDescUpdatedAt.Default.(func() time.Time)
	// scheduledsend.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduledsend.UpdateDefaultUpdatedAt = scheduledsendDescUpdatedAt.UpdateDefault.(func() time.Time)
	twilioaccountFields := schema.TwilioAccount{}.Fields()
	_ = twilioaccountFields
	// twilioaccountDescUserID is the schema descriptor for user_id field.
	twilioaccountDescUserID := twilioaccountFields[0].Descriptor()
	// twilioaccount.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	twilioaccount.UserIDValidator = twilioaccountDescUserID.Validators[0].(func(int) error)
	// twilioaccountDescAccountSid is the schema descriptor for account_sid field.
	twilioaccountDescAccountSid := twilioaccountFields[1].Descriptor()
	// twilioaccount.AccountSidValidator is a validator for the "account_sid" field. It is called by the builders before save.
	twilioaccount.AccountSidValidator = twilioaccountDescAccountSid.Validators[0].(func(string) error)
	// twilioaccountDescAuthToken is the schema descriptor for auth_token field.
	twilioaccountDescAuthToken := twilioaccountFields[2].Descriptor()
	// twilioaccount.AuthTokenValidator is a validator for the "auth_token" field. It is called by the builders before save.
	twilioaccount.AuthTokenValidator = twilioaccountDescAuthToken.Validators[0].(func(string) error)
	// twilioaccountDescPhoneNumber is the schema descriptor for phone_number field.
	twilioaccountDescPhoneNumber := twilioaccountFields[3].Descriptor()
	// twilioaccount.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	twilioaccount.PhoneNumberValidator = twilioaccountDescPhoneNumber.Validators[0].(func(string) error)
	// twilioaccountDescIsVerified is the schema descriptor for is_verified field.
	twilioaccountDescIsVerified := twilioaccountFields[4].Descriptor()
	// twilioaccount.DefaultIsVerified holds the default value on creation for the is_verified field.
	twilioaccount.DefaultIsVerified = twilioaccountDescIsVerified.Default.(bool)
	// twilioaccountDescCreatedAt is the schema descriptor for created_at field.
	twilioaccountDescCreatedAt := twilioaccountFields[5].Descriptor()
	// twilioaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	twilioaccount.DefaultCreatedAt = twilioaccountDescCreatedAt.Default.(func() time.Time)
	// twilioaccountDescUpdatedAt is the schema descriptor for updated_at field.
	twilioaccountDescUpdatedAt := twilioaccountFields[6].Descriptor()
	// twilioaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	twilioaccount.DefaultUpdatedAt = twilioaccountDescUpdatedAt.Default.(func() time.Time)
	// twilioaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	twilioaccount.UpdateDefaultUpdatedAt = twilioaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[3].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	userbillingFields := schema.UserBilling{}.Fields()
	_ = userbillingFields
	// userbillingDescUserID is the schema descriptor for user_id field.
	userbillingDescUserID := userbillingFields[0].Descriptor()
	// userbilling.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userbilling.UserIDValidator = userbillingDescUserID.Validators[0].(func(int) error)
	// userbillingDescCreditsRemaining is the schema descriptor for credits_remaining field.
	userbillingDescCreditsRemaining := userbillingFields[3].Descriptor()
	// userbilling.DefaultCreditsRemaining holds the default value on creation for the credits_remaining field.
	userbilling.DefaultCreditsRemaining = userbillingDescCreditsRemaining.Default.(int)
	// userbilling.CreditsRemainingValidator is a validator for the "credits_remaining" field. It is called by the builders before save.
	userbilling.CreditsRemainingValidator = userbillingDescCreditsRemaining.Validators[0].(func(int) error)
	// userbillingDescCreatedAt is the schema descriptor for created_at field.
	userbillingDescCreatedAt := userbillingFields[7].Descriptor()
	// userbilling.DefaultCreatedAt holds the default value on creation for the created_at field.
	userbilling.DefaultCreatedAt = userbillingDescCreatedAt.Default.(func() time.Time)
	// userbillingDescUpdatedAt is the schema descriptor for updated_at field.
	userbillingDescUpdatedAt := userbillingFields[8].Descriptor()
	// userbilling.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userbilling.DefaultUpdatedAt = userbillingDescUpdatedAt.Default.(func() time.Time)
	// userbilling.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userbilling.UpdateDefaultUpdatedAt = userbillingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
