package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/modaluna/gateway/pkg/auth"
)

// maxMultipartMemory bounds in-memory parsing of uploaded files.
const maxMultipartMemory = 32 << 20

// maxBodyBytes caps how much of an inbound JSON body is buffered
// before forwarding.
const maxBodyBytes = 32 << 20

// DefaultUpstreamTimeout bounds every outbound call so a stuck
// upstream never hangs the client connection indefinitely.
const DefaultUpstreamTimeout = 10 * time.Second

// Forwarder issues the single outbound call for a resolved route and
// relays the upstream response. It holds the only long-lived shared
// state of the pipeline: the pooled HTTP client.
type Forwarder struct {
	Client  *http.Client
	Log     *zap.Logger
	Metrics *Metrics
}

// Handler returns the handler forwarding requests for one route.
func (f *Forwarder) Handler(rt Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.forward(w, r, rt)
	}
}

func (f *Forwarder) forward(w http.ResponseWriter, r *http.Request, rt Route) {
	body, contentType, err := buildBody(w, r, rt)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Solicitud inválida al "+rt.Action+".")
		return
	}
	// The inbound request context carries client disconnects, so an
	// abandoned call is cancelled instead of completing into a dead
	// connection.
	req, err := http.NewRequestWithContext(r.Context(), rt.Method, upstreamURL(r, rt), body)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Error al "+rt.Action+".")
		return
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// The forwarded cookie is how backends see the session; bearer
	// clients carry their credential in Authorization instead.
	if cookie := r.Header.Get("Cookie"); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	if authz := r.Header.Get("Authorization"); authz != "" {
		req.Header.Set("Authorization", authz)
	}

	start := time.Now()
	resp, err := f.Client.Do(req)
	if f.Metrics != nil {
		f.Metrics.UpstreamLatency.WithLabelValues(rt.Service.Name).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if f.Metrics != nil {
			f.Metrics.UpstreamErrors.WithLabelValues(rt.Service.Name).Inc()
		}
		f.Log.Warn("Upstream unreachable",
			zap.String("service", rt.Service.Name),
			zap.String("route", rt.GatewayPattern()),
			zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "Error de conexión con "+rt.Service.Name+".")
		return
	}
	defer resp.Body.Close()
	f.relay(w, resp, rt)
}

// relay copies the upstream response back to the client. 2xx and 3xx
// pass through; anything else is normalized into the error envelope
// with the upstream status mirrored.
func (f *Forwarder) relay(w http.ResponseWriter, resp *http.Response, rt Route) {
	// Set-Cookie travels back verbatim so the browser scopes cookies
	// to the gateway origin, not the backend's.
	for _, c := range resp.Header.Values("Set-Cookie") {
		w.Header().Add("Set-Cookie", c)
	}
	if loc := resp.Header.Get("Location"); loc != "" {
		w.Header().Set("Location", loc)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Error de conexión con "+rt.Service.Name+".")
		return
	}
	if resp.StatusCode < http.StatusBadRequest {
		if ct := resp.Header.Get("Content-Type"); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write(body)
		return
	}
	msg := upstreamMessage(body)
	if msg == "" {
		msg = "Error al " + rt.Action + "."
	}
	WriteError(w, resp.StatusCode, msg)
}

// upstreamURL resolves the outbound URL: path parameters substituted
// into the route's upstream template, query string relayed verbatim.
func upstreamURL(r *http.Request, rt Route) string {
	u := strings.TrimSuffix(rt.Service.BaseURL, "/") + substitutePath(r, rt.Path)
	if q := r.URL.RawQuery; q != "" {
		u += "?" + q
	}
	return u
}

func substitutePath(r *http.Request, template string) string {
	var b strings.Builder
	for {
		i := strings.IndexByte(template, '{')
		if i < 0 {
			break
		}
		j := strings.IndexByte(template[i:], '}')
		if j < 0 {
			break
		}
		b.WriteString(template[:i])
		b.WriteString(url.PathEscape(chi.URLParam(r, template[i+1:i+j])))
		template = template[i+j+1:]
	}
	b.WriteString(template)
	return b.String()
}

func buildBody(w http.ResponseWriter, r *http.Request, rt Route) (io.Reader, string, error) {
	switch rt.Body {
	case BodyJSON:
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			return nil, "", err
		}
		if rt.Special == SpecialCheckout {
			if raw, err = checkoutBody(r.Context(), raw); err != nil {
				return nil, "", err
			}
			return bytes.NewReader(raw), "application/json", nil
		}
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/json"
		}
		return bytes.NewReader(raw), ct, nil
	case BodyMultipart:
		return multipartBody(r)
	default:
		return nil, "", nil
	}
}

// checkoutBody rewrites the payment payload to {items, userId}. The
// user id comes from the verified identity, never from the client.
func checkoutBody(ctx context.Context, raw []byte) ([]byte, error) {
	id, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Items json.RawMessage `json:"items"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, err
		}
	}
	if payload.Items == nil {
		payload.Items = json.RawMessage("[]")
	}
	return json.Marshal(map[string]interface{}{
		"items":  payload.Items,
		"userId": id.UserID,
	})
}

// multipartBody re-encodes the inbound form into a fresh multipart
// body. The outbound boundary differs from the inbound one, so file
// uploads are relayed, not streamed.
func multipartBody(r *http.Request) (io.Reader, string, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, vals := range r.MultipartForm.Value {
		for _, v := range vals {
			if err := mw.WriteField(key, v); err != nil {
				return nil, "", err
			}
		}
	}
	for key, files := range r.MultipartForm.File {
		for _, fh := range files {
			if err := copyFilePart(mw, key, fh); err != nil {
				return nil, "", err
			}
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func copyFilePart(mw *multipart.Writer, field string, fh *multipart.FileHeader) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	name := fh.Filename
	if name == "" {
		name = "imagen.jpg"
	}
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name)},
		"Content-Type":        {ct},
	})
	if err != nil {
		return err
	}
	_, err = io.Copy(part, src)
	return err
}
