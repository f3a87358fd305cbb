package inbound

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/danielmv/leadrevive/ent"
	entcampaign "github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/enttest"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/pkg/audit"
	"github.com/danielmv/leadrevive/pkg/cache"
	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	client  *ent.Client
	service *Service
	user    *ent.User
}

func setupEnv(t *testing.T) (*testEnv, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	log := logger.Default()

	mr := miniredis.RunT(t)
	deduper := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	auditSvc := audit.NewService(client, log)
	marker := campaign.NewService(client, nil, nil, auditSvc, nil, log)
	service := NewService(client, marker, deduper, auditSvc, nil, log)

	user, err := client.User.
		Create().
		SetName("Test User").
		SetEmail("inbound@example.com").
		Save(context.Background())
	require.NoError(t, err)

	return &testEnv{client: client, service: service, user: user},
		func() { client.Close() }
}

// seedCampaign creates an active campaign with one mid-sequence contact and
// a pending step-2 send
func seedCampaign(t *testing.T, env *testEnv, phoneNumber string, lastSent time.Time) (*ent.Campaign, *ent.Contact) {
	ctx := context.Background()

	camp, err := env.client.Campaign.
		Create().
		SetUserID(env.user.ID).
		SetName("Winback").
		SetStatus(entcampaign.StatusActive).
		SetMessageIntervals([]int{2, 5, 30}).
		Save(ctx)
	require.NoError(t, err)

	cont, err := env.client.Contact.
		Create().
		SetCampaignID(camp.ID).
		SetName("Jordan Lead").
		SetPhoneNumber(phoneNumber).
		SetStatus(contact.StatusFirstSent).
		SetMessageCount(1).
		SetLastMessageSentAt(lastSent).
		Save(ctx)
	require.NoError(t, err)

	_, err = env.client.ScheduledSend.
		Create().
		SetCampaignID(camp.ID).
		SetContactID(cont.ID).
		SetSequenceNumber(2).
		SetScheduledFor(lastSent.AddDate(0, 0, 2)).
		Save(ctx)
	require.NoError(t, err)

	return camp, cont
}

func TestHandleInboundMessage(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	ctx := context.Background()

	camp, cont := seedCampaign(t, env, "+12125550001", time.Now().Add(-time.Hour))

	t.Run("Success - Reply marks contact and cancels pending steps", func(t *testing.T) {
		err := env.service.HandleInboundMessage(ctx, "+12125550001", "+14025550100", "Yes, still interested!", "SM1001")
		require.NoError(t, err)

		got := env.client.Contact.GetX(ctx, cont.ID)
		assert.Equal(t, contact.StatusReplied, got.Status)
		require.NotNil(t, got.RespondedAt)

		msg := env.client.SMSMessage.Query().
			Where(smsmessage.DirectionEQ(smsmessage.DirectionInbound)).
			OnlyX(ctx)
		assert.Equal(t, smsmessage.StatusReceived, msg.Status)
		assert.Equal(t, "Yes, still interested!", msg.MessageBody)
		require.NotNil(t, msg.ContactID)
		assert.Equal(t, cont.ID, *msg.ContactID)

		pending, err := env.client.ScheduledSend.Query().
			Where(scheduledsend.StatusEQ(scheduledsend.StatusPending)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, pending)

		assert.Equal(t, 1, env.client.Campaign.GetX(ctx, camp.ID).ReplyCount)
	})

	t.Run("Success - Duplicate webhook delivery is ignored", func(t *testing.T) {
		err := env.service.HandleInboundMessage(ctx, "+12125550001", "+14025550100", "Yes, still interested!", "SM1001")
		require.NoError(t, err)

		count, err := env.client.SMSMessage.Query().
			Where(smsmessage.DirectionEQ(smsmessage.DirectionInbound)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, 1, env.client.Campaign.GetX(ctx, camp.ID).ReplyCount)
	})

	t.Run("Success - Unknown sender is dropped without error", func(t *testing.T) {
		err := env.service.HandleInboundMessage(ctx, "+17185550199", "+14025550100", "who is this", "SM1002")
		require.NoError(t, err)

		count, err := env.client.SMSMessage.Query().
			Where(smsmessage.MessageBodyEQ("who is this")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestHandleInboundOptOut(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	ctx := context.Background()

	camp, cont := seedCampaign(t, env, "+12125550002", time.Now().Add(-time.Hour))

	t.Run("Success - STOP keyword opts the contact out", func(t *testing.T) {
		err := env.service.HandleInboundMessage(ctx, "+12125550002", "+14025550100", "  stop ", "SM2001")
		require.NoError(t, err)

		got := env.client.Contact.GetX(ctx, cont.ID)
		assert.Equal(t, contact.StatusOptedOut, got.Status)
		require.NotNil(t, got.RespondedAt)
		assert.Equal(t, 1, env.client.Campaign.GetX(ctx, camp.ID).ReplyCount)
	})

	t.Run("Success - Second STOP finds no live contact and is a no-op", func(t *testing.T) {
		err := env.service.HandleInboundMessage(ctx, "+12125550002", "+14025550100", "STOP", "SM2002")
		require.NoError(t, err)
		assert.Equal(t, 1, env.client.Campaign.GetX(ctx, camp.ID).ReplyCount)
	})
}

func TestIsOptOut(t *testing.T) {
	assert.True(t, IsOptOut("STOP"))
	assert.True(t, IsOptOut("unsubscribe"))
	assert.True(t, IsOptOut(" Quit "))
	assert.False(t, IsOptOut("please stop sending"))
	assert.False(t, IsOptOut("Yes"))
}

func TestInboundPrefersMostRecentlyMessagedContact(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	ctx := context.Background()

	// The same lead was uploaded into two active campaigns
	_, older := seedCampaign(t, env, "+12125550003", time.Now().AddDate(0, 0, -10))
	_, newer := seedCampaign(t, env, "+12125550003", time.Now().Add(-time.Hour))

	err := env.service.HandleInboundMessage(ctx, "+12125550003", "+14025550100", "Sounds good", "SM3001")
	require.NoError(t, err)

	assert.Equal(t, contact.StatusReplied, env.client.Contact.GetX(ctx, newer.ID).Status)
	assert.Equal(t, contact.StatusFirstSent, env.client.Contact.GetX(ctx, older.ID).Status)
}

func TestInboundIgnoresPausedCampaigns(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	ctx := context.Background()

	camp, cont := seedCampaign(t, env, "+12125550004", time.Now().Add(-time.Hour))
	env.client.Campaign.UpdateOneID(camp.ID).
		SetStatus(entcampaign.StatusPaused).
		SaveX(ctx)

	err := env.service.HandleInboundMessage(ctx, "+12125550004", "+14025550100", "Hello?", "SM4001")
	require.NoError(t, err)
	assert.Equal(t, contact.StatusFirstSent, env.client.Contact.GetX(ctx, cont.ID).Status)
}

func TestHandleDeliveryReceipt(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	ctx := context.Background()

	camp, cont := seedCampaign(t, env, "+12125550005", time.Now().Add(-time.Hour))

	msg, err := env.client.SMSMessage.
		Create().
		SetCampaignID(camp.ID).
		SetContactID(cont.ID).
		SetDirection(smsmessage.DirectionOutbound).
		SetSequenceNumber(1).
		SetMessageBody("Hi Jordan Lead, still interested?").
		SetStatus(smsmessage.StatusSent).
		SetTwilioSid("SM5001").
		SetSentAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	t.Run("Success - Delivered receipt updates log and counter once", func(t *testing.T) {
		require.NoError(t, env.service.HandleDeliveryReceipt(ctx, "SM5001", "delivered"))

		got := env.client.SMSMessage.GetX(ctx, msg.ID)
		assert.Equal(t, smsmessage.StatusDelivered, got.Status)
		require.NotNil(t, got.DeliveredAt)
		assert.Equal(t, 1, env.client.Campaign.GetX(ctx, camp.ID).DeliveredCount)

		// Twilio retries the callback
		require.NoError(t, env.service.HandleDeliveryReceipt(ctx, "SM5001", "delivered"))
		assert.Equal(t, 1, env.client.Campaign.GetX(ctx, camp.ID).DeliveredCount)
	})

	t.Run("Success - Unknown SID is ignored", func(t *testing.T) {
		require.NoError(t, env.service.HandleDeliveryReceipt(ctx, "SM9999", "delivered"))
	})
}

func TestHandleDeliveryReceiptFailed(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	ctx := context.Background()

	camp, cont := seedCampaign(t, env, "+12125550006", time.Now().Add(-time.Hour))

	msg, err := env.client.SMSMessage.
		Create().
		SetCampaignID(camp.ID).
		SetContactID(cont.ID).
		SetDirection(smsmessage.DirectionOutbound).
		SetSequenceNumber(1).
		SetMessageBody("Hi Jordan Lead, still interested?").
		SetStatus(smsmessage.StatusSent).
		SetTwilioSid("SM6001").
		SetSentAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, env.service.HandleDeliveryReceipt(ctx, "SM6001", "undelivered"))

	got := env.client.SMSMessage.GetX(ctx, msg.ID)
	assert.Equal(t, smsmessage.StatusUndelivered, got.Status)
	assert.Equal(t, 1, env.client.Campaign.GetX(ctx, camp.ID).FailedCount)

	// The carrier rejected the number: the contact is absorbed and its
	// remaining steps are canceled
	assert.Equal(t, contact.StatusFailed, env.client.Contact.GetX(ctx, cont.ID).Status)
	pending, err := env.client.ScheduledSend.Query().
		Where(scheduledsend.StatusEQ(scheduledsend.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)

	// Retry does not double count
	require.NoError(t, env.service.HandleDeliveryReceipt(ctx, "SM6001", "undelivered"))
	assert.Equal(t, 1, env.client.Campaign.GetX(ctx, camp.ID).FailedCount)
}
