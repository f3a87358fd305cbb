package campaign

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/danielmv/leadrevive/ent"
	entcampaign "github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/enttest"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/pkg/audit"
	"github.com/danielmv/leadrevive/pkg/domain"
	"github.com/danielmv/leadrevive/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockBillingGate is a fake billing gate for testing
type MockBillingGate struct {
	Active  bool
	Credits int
}

func (m *MockBillingGate) HasActiveSubscription(ctx context.Context, userID int) (bool, error) {
	return m.Active, nil
}

func (m *MockBillingGate) CreditsRemaining(ctx context.Context, userID int) (int, error) {
	return m.Credits, nil
}

// MockComplianceGate is a fake compliance gate for testing
type MockComplianceGate struct {
	Allowed bool
}

func (m *MockComplianceGate) CanMessageUS(ctx context.Context, userID int) (bool, error) {
	return m.Allowed, nil
}

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.
		Create().
		SetName("Test User").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func newTestService(client *ent.Client, billing *MockBillingGate, compliance *MockComplianceGate) *Service {
	log := logger.Default()
	return NewService(client, billing, compliance, audit.NewService(client, log), nil, log)
}

func defaultRequest(contacts int) CreateCampaignRequest {
	req := CreateCampaignRequest{
		Name: "Spring Reactivation",
		Templates: []TemplateInput{
			{SequenceNumber: 1, Body: "Hi {name}, still interested?"},
			{SequenceNumber: 2, Body: "Hi {name}, just checking in."},
			{SequenceNumber: 3, Body: "Last chance, {name}!"},
		},
	}
	for i := 0; i < contacts; i++ {
		req.Contacts = append(req.Contacts, ContactInput{
			Name:  fmt.Sprintf("Lead %d", i),
			Phone: fmt.Sprintf("+1212555%04d", i),
		})
	}
	return req
}

func TestCreateCampaign(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &MockBillingGate{}, &MockComplianceGate{})
	ctx := context.Background()
	user := createTestUser(t, client, "create@example.com")

	t.Run("Success - Applies defaults", func(t *testing.T) {
		result, err := service.CreateCampaign(ctx, user.ID, defaultRequest(3))
		require.NoError(t, err)

		camp := result.Campaign
		assert.Equal(t, entcampaign.StatusDraft, camp.Status)
		assert.Equal(t, DefaultDripBatchSize, camp.DripBatchSize)
		assert.Equal(t, DefaultDripIntervalDays, camp.DripIntervalDays)
		assert.Equal(t, DefaultMessageIntervals, camp.MessageIntervals)
		assert.Equal(t, 3, camp.TotalLeads)
		assert.Equal(t, 3, result.Imported)
		assert.Empty(t, result.Rejected)

		count, err := client.Contact.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		templates, err := client.MessageTemplate.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, templates)
	})

	t.Run("Success - Rejects bad phone numbers per row", func(t *testing.T) {
		req := defaultRequest(0)
		req.Contacts = []ContactInput{
			{Name: "Good", Phone: "+12125551234"},
			{Name: "Garbage", Phone: "not-a-number"},
			{Name: "Too short", Phone: "+1555"},
			{Name: "Duplicate", Phone: "+12125551234"},
		}

		result, err := service.CreateCampaign(ctx, user.ID, req)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Len(t, result.Rejected, 3)
		assert.Equal(t, 1, result.Campaign.TotalLeads)
	})

	t.Run("Error - No importable contacts", func(t *testing.T) {
		req := defaultRequest(0)
		req.Contacts = []ContactInput{{Name: "Bad", Phone: "nope"}}

		_, err := service.CreateCampaign(ctx, user.ID, req)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Error - Missing template step", func(t *testing.T) {
		req := defaultRequest(1)
		req.Templates = req.Templates[:2]

		_, err := service.CreateCampaign(ctx, user.ID, req)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Error - Duplicate template step", func(t *testing.T) {
		req := defaultRequest(1)
		req.Templates[2].SequenceNumber = 1

		_, err := service.CreateCampaign(ctx, user.ID, req)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Error - Wrong interval count", func(t *testing.T) {
		req := defaultRequest(1)
		req.MessageIntervals = []int{2, 5}

		_, err := service.CreateCampaign(ctx, user.ID, req)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestStartCampaignGates(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, client, "gates@example.com")

	t.Run("Error - No subscription", func(t *testing.T) {
		service := newTestService(client, &MockBillingGate{Active: false, Credits: 100}, &MockComplianceGate{Allowed: true})
		result, err := service.CreateCampaign(ctx, user.ID, defaultRequest(2))
		require.NoError(t, err)

		_, err = service.StartCampaign(ctx, user.ID, result.Campaign.ID)
		require.Error(t, err)
		assert.True(t, domain.IsRequiresSubscription(err))
	})

	t.Run("Error - No credits", func(t *testing.T) {
		service := newTestService(client, &MockBillingGate{Active: true, Credits: 0}, &MockComplianceGate{Allowed: true})
		result, err := service.CreateCampaign(ctx, user.ID, defaultRequest(2))
		require.NoError(t, err)

		_, err = service.StartCampaign(ctx, user.ID, result.Campaign.ID)
		require.Error(t, err)
		assert.True(t, domain.IsRequiresPayment(err))
	})

	t.Run("Error - US contacts without compliance", func(t *testing.T) {
		service := newTestService(client, &MockBillingGate{Active: true, Credits: 100}, &MockComplianceGate{Allowed: false})
		result, err := service.CreateCampaign(ctx, user.ID, defaultRequest(2))
		require.NoError(t, err)

		_, err = service.StartCampaign(ctx, user.ID, result.Campaign.ID)
		require.Error(t, err)
		assert.True(t, domain.IsRequiresA2P(err))
	})

	t.Run("Success - Non-US contacts skip the A2P gate", func(t *testing.T) {
		service := newTestService(client, &MockBillingGate{Active: true, Credits: 100}, &MockComplianceGate{Allowed: false})
		req := defaultRequest(0)
		req.Contacts = []ContactInput{
			{Name: "UK Lead", Phone: "+442071838750"},
		}
		result, err := service.CreateCampaign(ctx, user.ID, req)
		require.NoError(t, err)

		camp, err := service.StartCampaign(ctx, user.ID, result.Campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, entcampaign.StatusActive, camp.Status)
	})

	t.Run("Success - All gates pass, first batch admitted", func(t *testing.T) {
		service := newTestService(client, &MockBillingGate{Active: true, Credits: 100}, &MockComplianceGate{Allowed: true})
		result, err := service.CreateCampaign(ctx, user.ID, defaultRequest(5))
		require.NoError(t, err)

		camp, err := service.StartCampaign(ctx, user.ID, result.Campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, entcampaign.StatusActive, camp.Status)

		queued, err := client.Contact.Query().
			Where(
				contact.CampaignIDEQ(camp.ID),
				contact.StatusEQ(contact.StatusQueued),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, queued)

		pending, err := client.ScheduledSend.Query().
			Where(
				scheduledsend.CampaignIDEQ(camp.ID),
				scheduledsend.StatusEQ(scheduledsend.StatusPending),
				scheduledsend.SequenceNumberEQ(1),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, pending)

		refreshed, err := client.Campaign.Get(ctx, camp.ID)
		require.NoError(t, err)
		assert.NotNil(t, refreshed.LastBatchAdmittedAt)
	})
}

func TestAdmitContactsDripPacing(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &MockBillingGate{Active: true, Credits: 100}, &MockComplianceGate{Allowed: true})
	ctx := context.Background()
	user := createTestUser(t, client, "drip@example.com")

	// Batch size 10 against 25 contacts: admissions of 10, 10, then 5
	req := defaultRequest(25)
	req.DripBatchSize = 10
	result, err := service.CreateCampaign(ctx, user.ID, req)
	require.NoError(t, err)
	campID := result.Campaign.ID

	_, err = service.StartCampaign(ctx, user.ID, campID)
	require.NoError(t, err)

	countByStatus := func(status contact.Status) int {
		n, err := client.Contact.Query().
			Where(contact.CampaignIDEQ(campID), contact.StatusEQ(status)).
			Count(ctx)
		require.NoError(t, err)
		return n
	}

	assert.Equal(t, 10, countByStatus(contact.StatusQueued))
	assert.Equal(t, 15, countByStatus(contact.StatusUncontacted))

	admitted, err := service.AdmitContacts(ctx, campID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, admitted)
	assert.Equal(t, 5, countByStatus(contact.StatusUncontacted))

	admitted, err = service.AdmitContacts(ctx, campID, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, admitted)
	assert.Equal(t, 0, countByStatus(contact.StatusUncontacted))

	admitted, err = service.AdmitContacts(ctx, campID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, admitted)
}

func TestPauseResume(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &MockBillingGate{Active: true, Credits: 100}, &MockComplianceGate{Allowed: true})
	ctx := context.Background()
	user := createTestUser(t, client, "pause@example.com")

	result, err := service.CreateCampaign(ctx, user.ID, defaultRequest(3))
	require.NoError(t, err)
	campID := result.Campaign.ID

	t.Run("Error - Pause draft campaign", func(t *testing.T) {
		_, err := service.PauseCampaign(ctx, user.ID, campID)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})

	_, err = service.StartCampaign(ctx, user.ID, campID)
	require.NoError(t, err)

	t.Run("Success - Pause preserves pending sends", func(t *testing.T) {
		camp, err := service.PauseCampaign(ctx, user.ID, campID)
		require.NoError(t, err)
		assert.Equal(t, entcampaign.StatusPaused, camp.Status)

		pending, err := client.ScheduledSend.Query().
			Where(
				scheduledsend.CampaignIDEQ(campID),
				scheduledsend.StatusEQ(scheduledsend.StatusPending),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, pending)
	})

	t.Run("Success - Resume reactivates", func(t *testing.T) {
		camp, err := service.ResumeCampaign(ctx, user.ID, campID)
		require.NoError(t, err)
		assert.Equal(t, entcampaign.StatusActive, camp.Status)
	})

	t.Run("Error - Resume active campaign", func(t *testing.T) {
		_, err := service.ResumeCampaign(ctx, user.ID, campID)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})
}

func TestMarkResponded(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &MockBillingGate{Active: true, Credits: 100}, &MockComplianceGate{Allowed: true})
	ctx := context.Background()
	user := createTestUser(t, client, "respond@example.com")

	result, err := service.CreateCampaign(ctx, user.ID, defaultRequest(2))
	require.NoError(t, err)
	campID := result.Campaign.ID
	_, err = service.StartCampaign(ctx, user.ID, campID)
	require.NoError(t, err)

	contacts, err := client.Contact.Query().Where(contact.CampaignIDEQ(campID)).All(ctx)
	require.NoError(t, err)
	target := contacts[0]

	t.Run("First transition cancels pending sends", func(t *testing.T) {
		transitioned, err := service.MarkResponded(ctx, target.ID)
		require.NoError(t, err)
		assert.True(t, transitioned)

		refreshed, err := client.Contact.Get(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, contact.StatusReplied, refreshed.Status)
		assert.NotNil(t, refreshed.RespondedAt)

		pending, err := client.ScheduledSend.Query().
			Where(
				scheduledsend.ContactIDEQ(target.ID),
				scheduledsend.StatusEQ(scheduledsend.StatusPending),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, pending)
	})

	t.Run("Second transition is a no-op", func(t *testing.T) {
		transitioned, err := service.MarkResponded(ctx, target.ID)
		require.NoError(t, err)
		assert.False(t, transitioned)
	})

	t.Run("Opt-out cannot override replied", func(t *testing.T) {
		transitioned, err := service.MarkOptedOut(ctx, target.ID)
		require.NoError(t, err)
		assert.False(t, transitioned)

		refreshed, err := client.Contact.Get(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, contact.StatusReplied, refreshed.Status)
	})
}

func TestDeleteCampaignCascades(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &MockBillingGate{Active: true, Credits: 100}, &MockComplianceGate{Allowed: true})
	ctx := context.Background()
	user := createTestUser(t, client, "delete@example.com")

	result, err := service.CreateCampaign(ctx, user.ID, defaultRequest(4))
	require.NoError(t, err)
	campID := result.Campaign.ID
	_, err = service.StartCampaign(ctx, user.ID, campID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteCampaign(ctx, user.ID, campID))

	for name, count := range map[string]func() (int, error){
		"contacts":  func() (int, error) { return client.Contact.Query().Count(ctx) },
		"templates": func() (int, error) { return client.MessageTemplate.Query().Count(ctx) },
		"sends":     func() (int, error) { return client.ScheduledSend.Query().Count(ctx) },
		"campaigns": func() (int, error) { return client.Campaign.Query().Count(ctx) },
	} {
		n, err := count()
		require.NoError(t, err)
		assert.Zero(t, n, name)
	}
}

func TestGetCampaignOwnership(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &MockBillingGate{}, &MockComplianceGate{})
	ctx := context.Background()
	owner := createTestUser(t, client, "owner@example.com")
	other := createTestUser(t, client, "other@example.com")

	result, err := service.CreateCampaign(ctx, owner.ID, defaultRequest(1))
	require.NoError(t, err)

	_, err = service.GetCampaign(ctx, other.ID, result.Campaign.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestMaybeComplete(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &MockBillingGate{Active: true, Credits: 100}, &MockComplianceGate{Allowed: true})
	ctx := context.Background()
	user := createTestUser(t, client, "complete@example.com")

	// No restart cycle so the campaign can self-complete
	req := defaultRequest(1)
	req.MessageIntervals = []int{2, 5, 0}
	result, err := service.CreateCampaign(ctx, user.ID, req)
	require.NoError(t, err)
	campID := result.Campaign.ID
	_, err = service.StartCampaign(ctx, user.ID, campID)
	require.NoError(t, err)

	t.Run("Not complete while sends are live", func(t *testing.T) {
		done, err := service.MaybeComplete(ctx, campID)
		require.NoError(t, err)
		assert.False(t, done)
	})

	t.Run("Completes once the queue drains", func(t *testing.T) {
		// Simulate the dispatcher finishing the only contact
		_, err := client.ScheduledSend.Update().
			Where(scheduledsend.CampaignIDEQ(campID)).
			SetStatus(scheduledsend.StatusSent).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.Contact.Update().
			Where(contact.CampaignIDEQ(campID)).
			SetStatus(contact.StatusThirdSent).
			Save(ctx)
		require.NoError(t, err)

		done, err := service.MaybeComplete(ctx, campID)
		require.NoError(t, err)
		assert.True(t, done)

		camp, err := client.Campaign.Get(ctx, campID)
		require.NoError(t, err)
		assert.Equal(t, entcampaign.StatusCompleted, camp.Status)
	})
}

func TestAdmitDueBatches(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &MockBillingGate{Active: true, Credits: 1000}, &MockComplianceGate{Allowed: true})
	ctx := context.Background()
	user := createTestUser(t, client, "drip@example.com")

	req := defaultRequest(25)
	req.DripBatchSize = 10
	result, err := service.CreateCampaign(ctx, user.ID, req)
	require.NoError(t, err)
	campID := result.Campaign.ID

	// Start admits the first batch and stamps the admission time
	_, err = service.StartCampaign(ctx, user.ID, campID)
	require.NoError(t, err)
	camp := client.Campaign.GetX(ctx, campID)
	require.NotNil(t, camp.LastBatchAdmittedAt)

	now := time.Now()

	t.Run("Interval not elapsed - No admission", func(t *testing.T) {
		admitted, err := service.AdmitDueBatches(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 0, admitted)
	})

	t.Run("Interval elapsed - Admits the next batch", func(t *testing.T) {
		admitted, err := service.AdmitDueBatches(ctx, now.AddDate(0, 0, DefaultDripIntervalDays))
		require.NoError(t, err)
		assert.Equal(t, 10, admitted)

		queued, err := client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusQueued)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 20, queued)
	})

	t.Run("Paused campaign - Skipped", func(t *testing.T) {
		_, err := service.PauseCampaign(ctx, user.ID, campID)
		require.NoError(t, err)

		admitted, err := service.AdmitDueBatches(ctx, now.AddDate(0, 0, 2*DefaultDripIntervalDays))
		require.NoError(t, err)
		assert.Equal(t, 0, admitted)
	})
}
