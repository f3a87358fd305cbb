package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15551234567", r.PostFormValue("To"))
		assert.Equal(t, "+15559876543", r.PostFormValue("From"))
		assert.Equal(t, "Hi there", r.PostFormValue("Body"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM001","status":"queued","to":"+15551234567","from":"+15559876543"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "secret", WithBaseURLs(server.URL, server.URL))

	msg, err := client.SendMessage(context.Background(), "+15551234567", "+15559876543", "Hi there")
	require.NoError(t, err)
	assert.Equal(t, "SM001", msg.SID)
	assert.Equal(t, "queued", msg.Status)
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' phone number"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "secret", WithBaseURLs(server.URL, server.URL))

	_, err := client.SendMessage(context.Background(), "bogus", "+15559876543", "Hi")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, 21211, apiErr.Code)
	assert.Contains(t, apiErr.Message, "Invalid 'To'")
}

func TestVerifyCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"sid":"AC123","status":"active"}`))
		}))
		defer server.Close()

		client := NewClient("AC123", "secret", WithBaseURLs(server.URL, server.URL))
		ok, err := client.VerifyCredentials(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":20003,"message":"Authenticate"}`))
		}))
		defer server.Close()

		client := NewClient("AC123", "wrong", WithBaseURLs(server.URL, server.URL))
		ok, err := client.VerifyCredentials(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRegisterBrand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/a2p/BrandRegistrations", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Acme Roofing", r.PostFormValue("CompanyName"))
		assert.Equal(t, "12-3456789", r.PostFormValue("Ein"))
		assert.Equal(t, "Jane", r.PostFormValue("FirstName"))
		assert.Equal(t, "Doe", r.PostFormValue("LastName"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"BN001","status":"PENDING"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "secret", WithBaseURLs(server.URL, server.URL))

	brand, err := client.RegisterBrand(context.Background(), BrandParams{
		CompanyName:  "Acme Roofing",
		EIN:          "12-3456789",
		Vertical:     "CONSTRUCTION",
		ContactName:  "Jane Doe",
		ContactEmail: "jane@acme.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "BN001", brand.SID)
}

func TestSearchAvailableNumbers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "402", r.URL.Query().Get("AreaCode"))
		w.Write([]byte(`{"available_phone_numbers":[{"phone_number":"+14025550101"},{"phone_number":"+14025550102"}]}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "secret", WithBaseURLs(server.URL, server.URL))

	numbers, err := client.SearchAvailableNumbers(context.Background(), "402", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"+14025550101", "+14025550102"}, numbers)
}

func TestListIncomingNumbers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/IncomingPhoneNumbers.json", r.URL.Path)
		w.Write([]byte(`{"incoming_phone_numbers":[{"sid":"PN001","phone_number":"+15559990000"}]}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "secret", WithBaseURLs(server.URL, server.URL))

	numbers, err := client.ListIncomingNumbers(context.Background())
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, "+15559990000", numbers[0].PhoneNumber)
}
