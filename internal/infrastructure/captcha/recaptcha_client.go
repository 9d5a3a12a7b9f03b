package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
)

// Verificar en tiempo de compilación que Client implementa CaptchaVerifier.
var _ leads.CaptchaVerifier = (*Client)(nil)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Client verificador de tokens reCAPTCHA contra el endpoint siteverify.
// El protocolo es el mismo para el desafío invisible (v3, con score y action)
// y el interactivo (v2, solo success); cambia únicamente el secret.
// Usa net/http de la librería estándar; no requiere SDK.
type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

// NewClient construye el verificador. verifyURL vacío usa el endpoint de Google;
// los tests lo apuntan a un httptest.Server.
func NewClient(secret, verifyURL string) *Client {
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}
	return &Client{
		secret:    secret,
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// siteverifyResponse estructura de respuesta del endpoint de verificación.
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify envía el token al endpoint y devuelve el veredicto. Un error aquí es
// de transporte o configuración; un token malo es Success=false, no error.
func (c *Client) Verify(ctx context.Context, token string) (leads.CaptchaResult, error) {
	if c.secret == "" {
		return leads.CaptchaResult{}, fmt.Errorf("recaptcha: secret no configurado")
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return leads.CaptchaResult{}, fmt.Errorf("recaptcha: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return leads.CaptchaResult{}, fmt.Errorf("recaptcha: llamar siteverify: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return leads.CaptchaResult{}, fmt.Errorf("recaptcha: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return leads.CaptchaResult{}, fmt.Errorf("recaptcha: siteverify HTTP %d", resp.StatusCode)
	}

	var out siteverifyResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return leads.CaptchaResult{}, fmt.Errorf("recaptcha: decodificar respuesta: %w", err)
	}
	return leads.CaptchaResult{
		Success: out.Success,
		Score:   out.Score,
		Action:  out.Action,
	}, nil
}
