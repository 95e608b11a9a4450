package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMissingWebhookSecret = errors.New("missing PAYMENT_WEBHOOK_SECRET")

var (
	errMissingSignature   = errs.Verification("missing x-signature header")
	errMalformedSignature = errs.Verification("malformed x-signature header")
	errBadSignature       = errs.Verification("x-signature does not match")
	errBadPaymentID       = errs.Verification("notification payment id is malformed")
)

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

type GatewayOptions struct {
	AccessToken string
	// WebhookSecret signs the x-signature header of notifications.
	WebhookSecret string
	// NotificationBaseURL is the public base of this API; the order ref is
	// appended as /v1/payments/<ref>/webhook.
	NotificationBaseURL string
	Mock                bool
}

type MercadoPagoGateway struct {
	preferences     preference.Client
	payments        payment.Client
	webhookSecret   string
	notificationURL string
	mockMode        bool
	now             func() time.Time
}

func NewMercadoPagoGateway(opts GatewayOptions) (*MercadoPagoGateway, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.NotificationBaseURL), "/")
	if opts.Mock {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, notificationURL: base, now: time.Now}, nil
	}

	if opts.AccessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	if opts.WebhookSecret == "" {
		logger.Error("[payment][gateway] missing PAYMENT_WEBHOOK_SECRET")
		return nil, ErrMissingWebhookSecret
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		webhookSecret:   opts.WebhookSecret,
		notificationURL: base,
		now:             time.Now,
	}, nil
}

// CreateOrder opens a checkout preference. The order reference travels as
// external_reference and comes back on the verified payment.
func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, order interfaces.CheckoutOrder) (interfaces.CheckoutSession, error) {
	if g.mockMode {
		return g.mockCreateOrder(order)
	}
	logger.Info("[payment][gateway] create preference start",
		zap.String("order_ref", order.Reference),
		zap.Int64("amount", order.Amount),
	)

	req := preference.Request{
		ExternalReference: order.Reference,
		Items: []preference.ItemRequest{{
			ID:         order.ChallengeID,
			Title:      order.Title,
			Quantity:   1,
			UnitPrice:  MinorToMajor(order.Amount),
			CurrencyID: order.Currency,
		}},
		Metadata: map[string]any{
			"challenge_id": order.ChallengeID,
			"proposal_id":  order.ProposalID,
			"order_ref":    order.Reference,
		},
	}
	if g.notificationURL != "" {
		req.NotificationURL = g.notificationURL + "/v1/payments/" + order.Reference + "/webhook"
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		logger.Error("[payment][gateway] sdk create preference failed", zap.String("order_ref", order.Reference), zap.Error(err))
		return interfaces.CheckoutSession{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	logger.Info("[payment][gateway] create preference success",
		zap.String("order_ref", order.Reference),
		zap.String("provider_ref", resp.ID),
	)
	return interfaces.CheckoutSession{ProviderRef: resp.ID, CheckoutURL: resp.InitPoint, Raw: raw}, nil
}

// VerifyCallback checks the x-signature HMAC, then reads the payment back
// from Mercado Pago. Nothing in the callback body is trusted beyond the id.
// Notifications that are not signed payment callbacks come back as
// interfaces.ErrCallbackIgnored.
func (g *MercadoPagoGateway) VerifyCallback(ctx context.Context, cb interfaces.GatewayCallback) (interfaces.VerifiedPayment, error) {
	if topic := notificationTopic(cb); topic != "" && topic != "payment" {
		return interfaces.VerifiedPayment{}, fmt.Errorf("%w: topic %q", interfaces.ErrCallbackIgnored, topic)
	}
	if g.mockMode {
		return mockVerify(cb)
	}

	dataID := notificationDataID(cb)
	if dataID == "" {
		return interfaces.VerifiedPayment{}, fmt.Errorf("%w: no payment id", interfaces.ErrCallbackIgnored)
	}
	signature := header(cb.Headers, "x-signature")
	if strings.TrimSpace(signature) == "" {
		return interfaces.VerifiedPayment{}, fmt.Errorf("%w: unsigned notification for payment %s", interfaces.ErrCallbackIgnored, dataID)
	}
	if err := VerifySignature(g.webhookSecret, signature, header(cb.Headers, "x-request-id"), dataID); err != nil {
		return interfaces.VerifiedPayment{}, err
	}

	paymentID, err := strconv.Atoi(dataID)
	if err != nil {
		return interfaces.VerifiedPayment{}, errs.With(errBadPaymentID, err)
	}
	resp, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		logger.Warn("[payment][gateway] payment lookup failed", zap.String("payment_id", dataID), zap.Error(err))
		return interfaces.VerifiedPayment{}, errs.Unavailable("payment lookup failed", err)
	}
	raw, _ := json.Marshal(resp)

	return interfaces.VerifiedPayment{
		OrderReference:    resp.ExternalReference,
		Success:           resp.Status == "approved",
		Amount:            MajorToMinor(resp.TransactionAmount),
		Currency:          resp.CurrencyID,
		ProviderPaymentID: strconv.Itoa(resp.ID),
		ProviderStatus:    resp.Status,
		Raw:               raw,
	}, nil
}

// VerifySignature checks a Mercado Pago "ts=<unix>,v1=<hex>" header against
// the manifest "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
func VerifySignature(secret, signature, requestID, dataID string) error {
	if strings.TrimSpace(signature) == "" {
		return errMissingSignature
	}
	var ts, v1 string
	for _, part := range strings.Split(signature, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return errMalformedSignature
	}
	want, err := hex.DecodeString(v1)
	if err != nil {
		return errMalformedSignature
	}
	if !hmac.Equal(want, signManifest(secret, dataID, requestID, ts)) {
		return errBadSignature
	}
	return nil
}

func signManifest(secret, dataID, requestID, ts string) []byte {
	var b strings.Builder
	b.WriteString("id:" + strings.ToLower(dataID) + ";")
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(b.String()))
	return mac.Sum(nil)
}

// SignatureHeader builds a valid x-signature value.
func SignatureHeader(secret, dataID, requestID string, ts time.Time) string {
	unix := strconv.FormatInt(ts.Unix(), 10)
	return "ts=" + unix + ",v1=" + hex.EncodeToString(signManifest(secret, dataID, requestID, unix))
}

// notificationTopic reads "type" (webhooks) or "topic" (IPN) from the query,
// then from the body. Empty when the notification names neither.
func notificationTopic(cb interfaces.GatewayCallback) string {
	for _, key := range []string{"type", "topic"} {
		if v := strings.TrimSpace(cb.Query[key]); v != "" {
			return strings.ToLower(v)
		}
	}
	var body struct {
		Type  string `json:"type"`
		Topic string `json:"topic"`
	}
	if len(cb.Body) == 0 || json.Unmarshal(cb.Body, &body) != nil {
		return ""
	}
	if body.Type != "" {
		return strings.ToLower(strings.TrimSpace(body.Type))
	}
	return strings.ToLower(strings.TrimSpace(body.Topic))
}

func notificationDataID(cb interfaces.GatewayCallback) string {
	if id := strings.TrimSpace(cb.Query["data.id"]); id != "" {
		return id
	}
	if id := strings.TrimSpace(cb.Query["id"]); id != "" && cb.Query["topic"] == "payment" {
		return id
	}
	var body struct {
		Data struct {
			ID json.RawMessage `json:"id"`
		} `json:"data"`
	}
	if len(cb.Body) == 0 || json.Unmarshal(cb.Body, &body) != nil {
		return ""
	}
	return strings.Trim(string(body.Data.ID), `"`)
}

func header(h map[string]string, key string) string {
	if v, ok := h[key]; ok {
		return v
	}
	for k, v := range h {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// MinorToMajor converts integer cents to the float the checkout API takes.
func MinorToMajor(amount int64) float64 {
	return float64(amount) / 100
}

func MajorToMinor(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (g *MercadoPagoGateway) mockCreateOrder(order interfaces.CheckoutOrder) (interfaces.CheckoutSession, error) {
	id := "mock-pref-" + strconv.FormatInt(g.now().UTC().UnixNano(), 10)
	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"external_reference": order.Reference,
		"amount":             order.Amount,
		"currency":           order.Currency,
	})
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	url := "/v1/payments/" + order.Reference
	if g.notificationURL != "" {
		url = g.notificationURL + url
	}
	logger.Info("[payment][gateway] mock create preference", zap.String("order_ref", order.Reference), zap.String("provider_ref", id))
	return interfaces.CheckoutSession{ProviderRef: id, CheckoutURL: url, Raw: raw}, nil
}

// mockVerify trusts the body: {"external_reference","status","transaction_amount","currency_id"}.
// Development only.
func mockVerify(cb interfaces.GatewayCallback) (interfaces.VerifiedPayment, error) {
	var body struct {
		ExternalReference string  `json:"external_reference"`
		Status            string  `json:"status"`
		TransactionAmount float64 `json:"transaction_amount"`
		CurrencyID        string  `json:"currency_id"`
	}
	if err := json.Unmarshal(cb.Body, &body); err != nil {
		return interfaces.VerifiedPayment{}, errs.With(errs.Verification("mock callback body is not valid json"), err)
	}
	if body.ExternalReference == "" {
		return interfaces.VerifiedPayment{}, errs.Verification("mock callback has no external_reference")
	}
	if body.Status == "" {
		body.Status = "approved"
	}
	return interfaces.VerifiedPayment{
		OrderReference:    body.ExternalReference,
		Success:           body.Status == "approved",
		Amount:            MajorToMinor(body.TransactionAmount),
		Currency:          body.CurrencyID,
		ProviderPaymentID: fmt.Sprintf("mock-%s", body.ExternalReference),
		ProviderStatus:    body.Status,
		Raw:               cb.Body,
	}, nil
}
