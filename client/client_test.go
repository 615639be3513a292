// client/client_test.go
//
// Behavioural tests against httptest servers: reads absorb failures,
// writes propagate them, and the quote path fails open.

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamirmotors/pamir/internal/crm"
)

// deadServer returns a base URL nothing listens on.
func deadServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()
	return url
}

func TestListLeadsEmptyOnFailure(t *testing.T) {
	c := New(deadServer(t), WithTimeout(time.Second))

	got := c.ListLeads(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListLeadsDemoFallback(t *testing.T) {
	c := New(deadServer(t), WithTimeout(time.Second), WithDemoFixtures())

	got := c.ListLeads(context.Background())
	require.Len(t, got, 3)
	assert.Equal(t, "John Smith", got[0].Name)
	assert.Equal(t, crm.StatusNegotiation, got[2].Status)
}

func TestListLeadsDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/leads", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"John Smith","status":"New Inquiry"}]`))
	}))
	defer srv.Close()

	got := New(srv.URL).ListLeads(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, crm.StatusNewInquiry, got[0].Status)
}

func TestCreateLeadPropagatesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"Database not available"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateLead(context.Background(), crm.LeadSubmission{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Database not available")
	assert.False(t, IsNotFound(err))
}

func TestUpdateLeadStatusWire(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/leads/4", r.URL.Path)

		var patch crm.LeadPatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		require.NotNil(t, patch.Status)
		assert.Equal(t, crm.StatusQuoting, *patch.Status)
		// Absent fields must stay absent so the server merge is partial.
		assert.Nil(t, patch.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":4,"status":"Quoting"}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).UpdateLeadStatus(context.Background(), 4, crm.StatusQuoting)
	require.NoError(t, err)
	assert.Equal(t, crm.StatusQuoting, got.Status)
}

func TestNotFoundDetection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Vehicle not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Vehicle(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Vehicle not found")
}

func TestPartsInquiryFailsClosed(t *testing.T) {
	c := New(deadServer(t), WithTimeout(time.Second))

	_, err := c.SubmitPartsInquiry(context.Background(), map[string]any{"partName": "filter"})
	require.Error(t, err)
}

func TestVehicleQuoteFailsOpen(t *testing.T) {
	c := New(deadServer(t), WithTimeout(time.Second))

	ack := c.RequestVehicleQuote(context.Background(), map[string]any{"vehicleModel": "D155AX"})
	require.NotNil(t, ack)
	assert.True(t, ack.Queued)
	assert.Equal(t, "Vehicle quote request received successfully", ack.Message)
}

func TestVehicleQuotePassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/vehicle-quote", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Vehicle quote request received successfully"}`))
	}))
	defer srv.Close()

	ack := New(srv.URL).RequestVehicleQuote(context.Background(), map[string]any{})
	require.NotNil(t, ack)
	assert.False(t, ack.Queued)
}

func TestHealthFallback(t *testing.T) {
	c := New(deadServer(t), WithTimeout(time.Second))

	rep := c.Health(context.Background())
	assert.Equal(t, "OK", rep.Status)
	assert.Equal(t, "Disconnected", rep.Database)
	assert.False(t, rep.Timestamp.IsZero())
}

func TestPollHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","timestamp":"2025-11-18T09:00:00Z","database":"Connected"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := New(srv.URL).PollHealth(ctx, 10*time.Millisecond)

	// First report arrives without waiting a full interval.
	select {
	case rep := <-ch:
		assert.Equal(t, "Connected", rep.Database)
	case <-time.After(2 * time.Second):
		t.Fatal("no report before deadline")
	}

	cancel()
	// Drain until the poller closes the channel.
	for range ch {
	}
}
