package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/handler"
	"github.com/popeskul/clinic-channel-gateway/internal/models"
	"github.com/popeskul/clinic-channel-gateway/internal/service"
	servicemocks "github.com/popeskul/clinic-channel-gateway/internal/service/mocks"
)

type handlerFixture struct {
	channel    *servicemocks.MockChannelService
	antiblock  *servicemocks.MockAntiblockService
	rotator    *servicemocks.MockRotatorService
	alerting   *servicemocks.MockAlertingService
	monitor    *servicemocks.MockMonitorService
	dispatcher *servicemocks.MockDispatcherService
	reset      *servicemocks.MockResetService
	stats      *servicemocks.MockStatsService
	router     http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		channel:    servicemocks.NewMockChannelService(ctrl),
		antiblock:  servicemocks.NewMockAntiblockService(ctrl),
		rotator:    servicemocks.NewMockRotatorService(ctrl),
		alerting:   servicemocks.NewMockAlertingService(ctrl),
		monitor:    servicemocks.NewMockMonitorService(ctrl),
		dispatcher: servicemocks.NewMockDispatcherService(ctrl),
		reset:      servicemocks.NewMockResetService(ctrl),
		stats:      servicemocks.NewMockStatsService(ctrl),
	}

	svc := &service.Service{
		Channel:    f.channel,
		Antiblock:  f.antiblock,
		Rotator:    f.rotator,
		Alerting:   f.alerting,
		Monitor:    f.monitor,
		Dispatcher: f.dispatcher,
		Reset:      f.reset,
		Stats:      f.stats,
	}

	h := handler.NewHandler(svc, zap.NewNop())
	f.router = h.Routes()
	return f
}

func (f *handlerFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestCreateChannel(t *testing.T) {
	f := newHandlerFixture(t)

	f.channel.EXPECT().Create(gomock.Any()).DoAndReturn(func(in service.CreateChannelInput) (*models.Channel, error) {
		assert.Equal(t, "tenant-1", in.TenantID)
		assert.Equal(t, models.ChannelTypeWhatsApp, in.Type)
		return &models.Channel{
			ID:       "ch-1",
			TenantID: in.TenantID,
			Status:   models.ChannelStatusConnecting,
		}, nil
	})

	rec := f.do(http.MethodPost, "/api/v1/channels/", handler.CreateChannelRequest{
		TenantID:    "tenant-1",
		Name:        "Main WhatsApp",
		ChannelType: models.ChannelTypeWhatsApp,
		Purpose:     models.PurposeReminders,
		EndpointURL: "https://provider.example.com/send",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var ch models.Channel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ch))
	assert.Equal(t, "ch-1", ch.ID)
}

func TestCreateChannel_ValidationError(t *testing.T) {
	f := newHandlerFixture(t)

	f.channel.EXPECT().Create(gomock.Any()).Return(nil, service.ErrInvalidConfig)

	rec := f.do(http.MethodPost, "/api/v1/channels/", handler.CreateChannelRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestCreateChannel_MalformedBody(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/channels/", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))
}

func TestGetChannel_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.channel.EXPECT().Get("missing").Return(nil, service.ErrChannelNotFound)

	rec := f.do(http.MethodGet, "/api/v1/channels/missing/", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestListChannels_UnknownPurpose(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/channels/?tenant_id=tenant-1&purpose=newsletter", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestCanSend_Denied(t *testing.T) {
	f := newHandlerFixture(t)

	f.antiblock.EXPECT().CanSend("ch-1").Return(&models.SendDecision{
		Allowed: false,
		Reason:  models.DenyDailyLimitExceeded,
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/channels/ch-1/can-send", nil)

	// A refusal is a normal answer, not an error.
	assert.Equal(t, http.StatusOK, rec.Code)

	var decision models.SendDecision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decision))
	assert.False(t, decision.Allowed)
	assert.Equal(t, models.DenyDailyLimitExceeded, decision.Reason)
}

func TestRecordSend(t *testing.T) {
	f := newHandlerFixture(t)

	f.antiblock.EXPECT().RecordSend("ch-1", gomock.Any()).Return("entry-1", nil)

	rec := f.do(http.MethodPost, "/api/v1/channels/ch-1/messages", handler.RecordSendRequest{
		TenantID:  "tenant-1",
		Category:  models.CategoryConfirmation,
		Recipient: "+380501234567",
		Content:   "Your visit is confirmed",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.RecordSendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "entry-1", resp.EntryID)
}

func TestRecordSend_RateLimited(t *testing.T) {
	f := newHandlerFixture(t)

	f.antiblock.EXPECT().RecordSend("ch-1", gomock.Any()).
		Return("", &service.RateLimitError{Reason: models.DenyHourlyLimit})

	rec := f.do(http.MethodPost, "/api/v1/channels/ch-1/messages", handler.RecordSendRequest{
		TenantID:  "tenant-1",
		Category:  models.CategoryConfirmation,
		Recipient: "+380501234567",
	})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SEND_NOT_ALLOWED", resp.Error)
	assert.Equal(t, string(models.DenyHourlyLimit), resp.Message)
}

func TestRecordSend_ChannelUnavailable(t *testing.T) {
	f := newHandlerFixture(t)

	f.antiblock.EXPECT().RecordSend("ch-1", gomock.Any()).Return("", service.ErrChannelUnavailable)

	rec := f.do(http.MethodPost, "/api/v1/channels/ch-1/messages", handler.RecordSendRequest{
		TenantID:  "tenant-1",
		Category:  models.CategoryConfirmation,
		Recipient: "+380501234567",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CHANNEL_UNAVAILABLE", errorCode(t, rec))
}

func TestRecordSend_MissingTenant(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/channels/ch-1/messages", handler.RecordSendRequest{
		Category:  models.CategoryConfirmation,
		Recipient: "+380501234567",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNextChannel(t *testing.T) {
	f := newHandlerFixture(t)

	f.rotator.EXPECT().NextChannel("tenant-1", models.PurposeReminders).
		Return(&models.Channel{ID: "ch-best"}, nil)

	rec := f.do(http.MethodGet, "/api/v1/channels/next?tenant_id=tenant-1&purpose=reminders", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var ch models.Channel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ch))
	assert.Equal(t, "ch-best", ch.ID)
}

func TestNextChannel_NoneAvailable(t *testing.T) {
	f := newHandlerFixture(t)

	f.rotator.EXPECT().NextChannel("tenant-1", models.PurposeReminders).
		Return(nil, service.ErrNoChannelAvailable)

	rec := f.do(http.MethodGet, "/api/v1/channels/next?tenant_id=tenant-1&purpose=reminders", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NO_CHANNEL_AVAILABLE", errorCode(t, rec))
}

func TestNextChannel_MissingParams(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/channels/next", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeliveryCallback(t *testing.T) {
	f := newHandlerFixture(t)

	f.dispatcher.EXPECT().HandleDeliveryCallback("prov-123", models.MessageStatusDelivered, nil).Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/webhooks/delivery", handler.DeliveryCallbackRequest{
		MessageID: "prov-123",
		Status:    models.MessageStatusDelivered,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeliveryCallback_UnknownMessage(t *testing.T) {
	f := newHandlerFixture(t)

	f.dispatcher.EXPECT().HandleDeliveryCallback("prov-999", models.MessageStatusDelivered, nil).
		Return(service.ErrUnknownMessage)

	rec := f.do(http.MethodPost, "/api/v1/webhooks/delivery", handler.DeliveryCallbackRequest{
		MessageID: "prov-999",
		Status:    models.MessageStatusDelivered,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeliveryCallback_MissingMessageID(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/webhooks/delivery", handler.DeliveryCallbackRequest{
		Status: models.MessageStatusDelivered,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAntiblockConfig(t *testing.T) {
	f := newHandlerFixture(t)

	daily := 100
	f.channel.EXPECT().UpdateAntiblockConfig("ch-1", gomock.Any()).
		DoAndReturn(func(_ string, patch service.AntiblockConfigPatch) (*models.AntiblockConfig, error) {
			require.NotNil(t, patch.DailyLimit)
			assert.Equal(t, 100, *patch.DailyLimit)
			return &models.AntiblockConfig{ChannelID: "ch-1", DailyLimit: 100}, nil
		})

	rec := f.do(http.MethodPut, "/api/v1/channels/ch-1/antiblock", handler.UpdateAntiblockRequest{
		DailyLimit: &daily,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAlerts_FilterParsing(t *testing.T) {
	f := newHandlerFixture(t)

	f.alerting.EXPECT().List(gomock.Any()).DoAndReturn(func(filter models.AlertFilter) ([]*models.Alert, error) {
		assert.Equal(t, "tenant-1", filter.TenantID)
		require.NotNil(t, filter.Resolved)
		assert.False(t, *filter.Resolved)
		return []*models.Alert{{ID: "alert-1"}}, nil
	})

	rec := f.do(http.MethodGet, "/api/v1/alerts/?tenant_id=tenant-1&resolved=false", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.AlertListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Alerts, 1)
}

func TestResolveAlert(t *testing.T) {
	f := newHandlerFixture(t)

	f.alerting.EXPECT().Resolve("alert-1", "handled by on-call").Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/alerts/alert-1/resolve", handler.ResolveAlertRequest{
		Note: "handled by on-call",
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServiceHealth_Unhealthy(t *testing.T) {
	f := newHandlerFixture(t)

	f.stats.EXPECT().ServiceHealth().Return(&service.ServiceHealthStatus{
		Status:   "unhealthy",
		Database: service.ComponentDown,
		Redis:    service.ComponentUp,
	})

	rec := f.do(http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestForceReset(t *testing.T) {
	f := newHandlerFixture(t)

	f.reset.EXPECT().ForceReset().Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/admin/reset", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ResetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestInternalErrorIsOpaque(t *testing.T) {
	f := newHandlerFixture(t)

	f.channel.EXPECT().Get("ch-1").Return(nil, errors.New("pq: connection refused"))

	rec := f.do(http.MethodGet, "/api/v1/channels/ch-1/", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The driver error must not leak into the response body.
	assert.NotContains(t, rec.Body.String(), "pq:")
}
