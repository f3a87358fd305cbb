package dispatch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/danielmv/leadrevive/ent"
	entcampaign "github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/enttest"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/pkg/audit"
	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/domain"
	"github.com/danielmv/leadrevive/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLedger is a fake credit ledger backed by an in-memory counter
type MockLedger struct {
	Credits  int
	Reserved int
	Refunded int
}

func (m *MockLedger) ReserveCredit(ctx context.Context, userID int) error {
	if m.Credits <= 0 {
		return domain.NewInsufficientCreditsError()
	}
	m.Credits--
	m.Reserved++
	return nil
}

func (m *MockLedger) RefundCredit(ctx context.Context, userID int) error {
	m.Credits++
	m.Refunded++
	return nil
}

// The campaign start gates need the wider billing surface
func (m *MockLedger) HasActiveSubscription(ctx context.Context, userID int) (bool, error) {
	return true, nil
}

func (m *MockLedger) CreditsRemaining(ctx context.Context, userID int) (int, error) {
	return m.Credits, nil
}

// MockGate is a fake compliance gate for testing
type MockGate struct {
	Allowed bool
}

func (m *MockGate) CanMessageUS(ctx context.Context, userID int) (bool, error) {
	return m.Allowed, nil
}

// MockNumberSource always resolves the same sending number
type MockNumberSource struct {
	Number string
}

func (m *MockNumberSource) ResolveFromNumber(ctx context.Context, userID int) (string, error) {
	if m.Number == "" {
		return "", domain.NewNotFoundError("sending number")
	}
	return m.Number, nil
}

type sentCall struct {
	To   string
	From string
	Body string
}

// MockProvider is a fake SMS provider that records every call
type MockProvider struct {
	SendSMSFn func(ctx context.Context, to, from, body string) (*SendResult, error)
	Calls     []sentCall
}

func (m *MockProvider) SendSMS(ctx context.Context, to, from, body string) (*SendResult, error) {
	m.Calls = append(m.Calls, sentCall{To: to, From: from, Body: body})
	if m.SendSMSFn != nil {
		return m.SendSMSFn(ctx, to, from, body)
	}
	return &SendResult{SID: fmt.Sprintf("SM%04d", len(m.Calls)), Status: "queued"}, nil
}

type testEnv struct {
	client    *ent.Client
	campaigns *campaign.Service
	dispatch  *Service
	ledger    *MockLedger
	gate      *MockGate
	provider  *MockProvider
	user      *ent.User
}

func setupEnv(t *testing.T, credits int) (*testEnv, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	log := logger.Default()

	ledger := &MockLedger{Credits: credits}
	gate := &MockGate{Allowed: true}
	provider := &MockProvider{}

	campaigns := campaign.NewService(client, ledger, gate, audit.NewService(client, log), nil, log)
	svc := NewService(client, campaigns, ledger, gate, &MockNumberSource{Number: "+14025550100"}, provider, nil, log)

	user, err := client.User.
		Create().
		SetName("Test User").
		SetEmail("dispatch@example.com").
		Save(context.Background())
	require.NoError(t, err)

	return &testEnv{
		client:    client,
		campaigns: campaigns,
		dispatch:  svc,
		ledger:    ledger,
		gate:      gate,
		provider:  provider,
		user:      user,
	}, func() { client.Close() }
}

// startCampaign creates and starts a campaign with n US contacts and the
// given message intervals, returning the campaign and its step-1 pendings
func startCampaign(t *testing.T, env *testEnv, n int, intervals []int) *ent.Campaign {
	ctx := context.Background()
	req := campaign.CreateCampaignRequest{
		Name:             "Winback",
		MessageIntervals: intervals,
		Templates: []campaign.TemplateInput{
			{SequenceNumber: 1, Body: "Hi {name}, still interested?"},
			{SequenceNumber: 2, Body: "Hi {name}, just checking in."},
			{SequenceNumber: 3, Body: "Last chance, {name}!"},
		},
	}
	for i := 0; i < n; i++ {
		req.Contacts = append(req.Contacts, campaign.ContactInput{
			Name:  fmt.Sprintf("Lead %d", i),
			Phone: fmt.Sprintf("+1212555%04d", i),
		})
	}
	result, err := env.campaigns.CreateCampaign(ctx, env.user.ID, req)
	require.NoError(t, err)
	require.Equal(t, n, result.Imported)

	camp, err := env.campaigns.StartCampaign(ctx, env.user.ID, result.Campaign.ID)
	require.NoError(t, err)
	return camp
}

func TestProcessDueSequenceChaining(t *testing.T) {
	env, cleanup := setupEnv(t, 100)
	defer cleanup()
	ctx := context.Background()

	camp := startCampaign(t, env, 1, []int{2, 5, 30})
	now := time.Now()

	// Step 1 fires immediately on start
	result, err := env.dispatch.ProcessDue(ctx, now, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	require.Len(t, env.provider.Calls, 1)
	assert.Equal(t, "Hi Lead 0, still interested?", env.provider.Calls[0].Body)
	assert.Equal(t, "+14025550100", env.provider.Calls[0].From)

	cont := env.client.Contact.Query().OnlyX(ctx)
	assert.Equal(t, contact.StatusFirstSent, cont.Status)
	assert.Equal(t, 1, cont.MessageCount)
	require.NotNil(t, cont.LastMessageSentAt)

	next := env.client.ScheduledSend.Query().
		Where(scheduledsend.StatusEQ(scheduledsend.StatusPending)).
		OnlyX(ctx)
	assert.Equal(t, 2, next.SequenceNumber)
	assert.WithinDuration(t, now.AddDate(0, 0, 2), next.ScheduledFor, time.Second)

	// Nothing due again until the step interval elapses
	result, err = env.dispatch.ProcessDue(ctx, now, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)

	// Step 2 at +2 days, step 3 at +7 days
	result, err = env.dispatch.ProcessDue(ctx, now.AddDate(0, 0, 2), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)

	result, err = env.dispatch.ProcessDue(ctx, now.AddDate(0, 0, 7), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, "Last chance, Lead 0!", env.provider.Calls[2].Body)

	cont = env.client.Contact.Query().OnlyX(ctx)
	assert.Equal(t, contact.StatusThirdSent, cont.Status)
	assert.Equal(t, 3, cont.MessageCount)

	// No fourth step exists
	pending, err := env.client.ScheduledSend.Query().
		Where(scheduledsend.StatusEQ(scheduledsend.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)

	camp = env.client.Campaign.GetX(ctx, camp.ID)
	assert.Equal(t, 3, camp.SentCount)

	messages, err := env.client.SMSMessage.Query().
		Where(smsmessage.DirectionEQ(smsmessage.DirectionOutbound)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, messages)
}

func TestDispatchClaimPreventsDoubleSend(t *testing.T) {
	env, cleanup := setupEnv(t, 100)
	defer cleanup()
	ctx := context.Background()

	startCampaign(t, env, 1, nil)
	now := time.Now()

	due, err := env.dispatch.SelectDue(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, due, 1)

	// Another worker claims the item between selection and dispatch
	env.client.ScheduledSend.UpdateOneID(due[0].ID).
		SetStatus(scheduledsend.StatusProcessing).
		SaveX(ctx)

	outcome, err := env.dispatch.dispatchOne(ctx, due[0], now)
	require.NoError(t, err)
	assert.Equal(t, outcomeSkipped, outcome)
	assert.Empty(t, env.provider.Calls)
	assert.Equal(t, 0, env.ledger.Reserved)

	count, err := env.client.SMSMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCreditConservation(t *testing.T) {
	env, cleanup := setupEnv(t, 3)
	defer cleanup()
	ctx := context.Background()

	startCampaign(t, env, 5, nil)

	result, err := env.dispatch.ProcessDue(ctx, time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Processed)
	assert.Equal(t, 3, result.Sent)
	assert.Equal(t, 2, result.Skipped)

	assert.Equal(t, 3, env.ledger.Reserved)
	assert.Equal(t, 0, env.ledger.Refunded)
	assert.Len(t, env.provider.Calls, 3)

	// The two blocked sends stay pending for a later cycle
	pending, err := env.client.ScheduledSend.Query().
		Where(scheduledsend.StatusEQ(scheduledsend.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	// Topping up releases them
	env.ledger.Credits = 10
	result, err = env.dispatch.ProcessDue(ctx, time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
}

func TestPauseFreezesDispatch(t *testing.T) {
	env, cleanup := setupEnv(t, 100)
	defer cleanup()
	ctx := context.Background()

	camp := startCampaign(t, env, 3, nil)
	_, err := env.campaigns.PauseCampaign(ctx, env.user.ID, camp.ID)
	require.NoError(t, err)

	result, err := env.dispatch.ProcessDue(ctx, time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Empty(t, env.provider.Calls)

	// The queue thaws unchanged on resume
	_, err = env.campaigns.ResumeCampaign(ctx, env.user.ID, camp.ID)
	require.NoError(t, err)

	result, err = env.dispatch.ProcessDue(ctx, time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
}

func TestReplyCancelsPendingSteps(t *testing.T) {
	env, cleanup := setupEnv(t, 100)
	defer cleanup()
	ctx := context.Background()

	startCampaign(t, env, 1, []int{2, 5, 30})
	now := time.Now()

	result, err := env.dispatch.ProcessDue(ctx, now, 0)
	require.NoError(t, err)
	require.Equal(t, 1, result.Sent)

	cont := env.client.Contact.Query().OnlyX(ctx)
	changed, err := env.campaigns.MarkResponded(ctx, cont.ID)
	require.NoError(t, err)
	require.True(t, changed)

	// The step-2 send was canceled; nothing fires at +2 days
	result, err = env.dispatch.ProcessDue(ctx, now.AddDate(0, 0, 2), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Len(t, env.provider.Calls, 1)
}

func TestReplyDuringDispatchCancelsSend(t *testing.T) {
	env, cleanup := setupEnv(t, 100)
	defer cleanup()
	ctx := context.Background()

	startCampaign(t, env, 1, nil)
	now := time.Now()

	due, err := env.dispatch.SelectDue(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, due, 1)

	// Reply lands between selection and dispatch
	cont := env.client.Contact.Query().OnlyX(ctx)
	_, err = env.campaigns.MarkResponded(ctx, cont.ID)
	require.NoError(t, err)

	// MarkResponded already canceled the pending send, so the claim loses
	outcome, err := env.dispatch.dispatchOne(ctx, due[0], now)
	require.NoError(t, err)
	assert.Equal(t, outcomeSkipped, outcome)
	assert.Empty(t, env.provider.Calls)
	assert.Equal(t, 0, env.ledger.Reserved)
}

func TestSendFailureRefundsCredit(t *testing.T) {
	env, cleanup := setupEnv(t, 10)
	defer cleanup()
	ctx := context.Background()

	env.provider.SendSMSFn = func(ctx context.Context, to, from, body string) (*SendResult, error) {
		return nil, errors.New("twilio error 30007: carrier violation")
	}

	camp := startCampaign(t, env, 1, nil)

	result, err := env.dispatch.ProcessDue(ctx, time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Sent)

	// The credit came back
	assert.Equal(t, 1, env.ledger.Reserved)
	assert.Equal(t, 1, env.ledger.Refunded)
	assert.Equal(t, 10, env.ledger.Credits)

	send := env.client.ScheduledSend.Query().OnlyX(ctx)
	assert.Equal(t, scheduledsend.StatusFailed, send.Status)
	assert.Contains(t, send.ErrorMessage, "30007")

	msg := env.client.SMSMessage.Query().OnlyX(ctx)
	assert.Equal(t, smsmessage.StatusFailed, msg.Status)

	camp = env.client.Campaign.GetX(ctx, camp.ID)
	assert.Equal(t, 1, camp.FailedCount)
	assert.Equal(t, 0, camp.SentCount)

	// No retry and no next step was scheduled
	cont := env.client.Contact.Query().OnlyX(ctx)
	assert.Equal(t, contact.StatusQueued, cont.Status)
	pending, err := env.client.ScheduledSend.Query().
		Where(scheduledsend.StatusEQ(scheduledsend.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}

func TestComplianceGateSkipsUSDestinations(t *testing.T) {
	env, cleanup := setupEnv(t, 10)
	defer cleanup()
	ctx := context.Background()

	startCampaign(t, env, 1, nil)

	// Registration revoked after the campaign started
	env.gate.Allowed = false

	result, err := env.dispatch.ProcessDue(ctx, time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, env.provider.Calls)
	assert.Equal(t, 0, env.ledger.Reserved)

	send := env.client.ScheduledSend.Query().OnlyX(ctx)
	assert.Equal(t, scheduledsend.StatusPending, send.Status)

	// Once registration completes the send goes out
	env.gate.Allowed = true
	result, err = env.dispatch.ProcessDue(ctx, time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestRestartDormant(t *testing.T) {
	env, cleanup := setupEnv(t, 100)
	defer cleanup()
	ctx := context.Background()

	camp := startCampaign(t, env, 3, []int{2, 5, 30})
	now := time.Now()

	contacts := env.client.Contact.Query().Order(ent.Asc(contact.FieldID)).AllX(ctx)
	require.Len(t, contacts, 3)

	// Cancel the auto-created step-1 sends; this test stages contacts directly
	env.client.ScheduledSend.Update().
		SetStatus(scheduledsend.StatusCanceled).
		SaveX(ctx)

	// Dormant: finished the sequence 31 days ago, never responded
	env.client.Contact.UpdateOneID(contacts[0].ID).
		SetStatus(contact.StatusThirdSent).
		SetLastMessageSentAt(now.AddDate(0, 0, -31)).
		SaveX(ctx)
	// Finished recently: the restart cycle has not elapsed
	env.client.Contact.UpdateOneID(contacts[1].ID).
		SetStatus(contact.StatusThirdSent).
		SetLastMessageSentAt(now.AddDate(0, 0, -5)).
		SaveX(ctx)
	// Finished long ago but responded: never restarted
	env.client.Contact.UpdateOneID(contacts[2].ID).
		SetStatus(contact.StatusThirdSent).
		SetLastMessageSentAt(now.AddDate(0, 0, -31)).
		SetRespondedAt(now.AddDate(0, 0, -30)).
		SaveX(ctx)

	restarted, err := env.dispatch.RestartDormant(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, restarted)

	cont := env.client.Contact.GetX(ctx, contacts[0].ID)
	assert.Equal(t, contact.StatusQueued, cont.Status)

	send := env.client.ScheduledSend.Query().
		Where(scheduledsend.StatusEQ(scheduledsend.StatusPending)).
		OnlyX(ctx)
	assert.Equal(t, contacts[0].ID, send.ContactID)
	assert.Equal(t, 1, send.SequenceNumber)

	assert.Equal(t, contact.StatusThirdSent, env.client.Contact.GetX(ctx, contacts[1].ID).Status)
	assert.Equal(t, contact.StatusThirdSent, env.client.Contact.GetX(ctx, contacts[2].ID).Status)

	// A zero restart interval disables the cycle entirely
	env.client.Campaign.UpdateOneID(camp.ID).
		SetMessageIntervals([]int{2, 5, 0}).
		SaveX(ctx)
	env.client.Contact.UpdateOneID(contacts[1].ID).
		SetLastMessageSentAt(now.AddDate(0, 0, -90)).
		SaveX(ctx)

	restarted, err = env.dispatch.RestartDormant(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, restarted)
}

func TestUnresolvableFromNumberHoldsSend(t *testing.T) {
	env, cleanup := setupEnv(t, 10)
	defer cleanup()
	ctx := context.Background()

	// No campaign override and nothing to resolve from
	env.dispatch.numbers = &MockNumberSource{}

	startCampaign(t, env, 1, nil)

	result, err := env.dispatch.ProcessDue(ctx, time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, env.ledger.Reserved)

	send := env.client.ScheduledSend.Query().OnlyX(ctx)
	assert.Equal(t, scheduledsend.StatusPending, send.Status)
}

func TestCampaignCompletesAfterQueueDrains(t *testing.T) {
	env, cleanup := setupEnv(t, 100)
	defer cleanup()
	ctx := context.Background()

	camp := startCampaign(t, env, 1, []int{2, 5, 0})
	now := time.Now()

	for _, offset := range []int{0, 2, 7} {
		result, err := env.dispatch.ProcessDue(ctx, now.AddDate(0, 0, offset), 0)
		require.NoError(t, err)
		require.Equal(t, 1, result.Sent)
	}

	camp = env.client.Campaign.GetX(ctx, camp.ID)
	assert.Equal(t, entcampaign.StatusCompleted, camp.Status)
}

func TestStaleClaimReclaimed(t *testing.T) {
	env, cleanup := setupEnv(t, 100)
	defer cleanup()
	ctx := context.Background()

	startCampaign(t, env, 2, []int{2, 5, 0})
	now := time.Now()

	sends := env.client.ScheduledSend.Query().Order(ent.Asc(scheduledsend.FieldID)).AllX(ctx)
	require.Len(t, sends, 2)

	// First claim belongs to a dispatcher that died mid-flight
	env.client.ScheduledSend.UpdateOne(sends[0]).
		SetStatus(scheduledsend.StatusProcessing).
		SetUpdatedAt(now.Add(-15 * time.Minute)).
		ExecX(ctx)

	// Second claim is live on another dispatcher
	env.client.ScheduledSend.UpdateOne(sends[1]).
		SetStatus(scheduledsend.StatusProcessing).
		SetUpdatedAt(now.Add(-10 * time.Second)).
		ExecX(ctx)

	result, err := env.dispatch.ProcessDue(ctx, now, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	require.Len(t, env.provider.Calls, 1)

	// The dead claim was requeued and delivered this cycle
	reclaimed := env.client.ScheduledSend.GetX(ctx, sends[0].ID)
	assert.Equal(t, scheduledsend.StatusSent, reclaimed.Status)

	// The live claim was left alone
	live := env.client.ScheduledSend.GetX(ctx, sends[1].ID)
	assert.Equal(t, scheduledsend.StatusProcessing, live.Status)
}
