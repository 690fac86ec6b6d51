package gateway

// BodyMode selects how the inbound request body travels upstream.
type BodyMode int

const (
	// BodyNone sends no body.
	BodyNone BodyMode = iota
	// BodyJSON forwards the JSON body unchanged.
	BodyJSON
	// BodyMultipart re-encodes the uploaded file and text fields into
	// a fresh multipart form. The inbound and outbound boundaries
	// differ, so the body cannot be streamed through byte for byte.
	BodyMultipart
)

// Special marks the few routes that do more than plain forwarding.
type Special int

const (
	// SpecialNone is a plain forwarded route.
	SpecialNone Special = iota
	// SpecialWhoAmI answers locally with the verified identity.
	SpecialWhoAmI
	// SpecialRedirect redirects the client to the upstream URL
	// without issuing an outbound call.
	SpecialRedirect
	// SpecialCheckout rewrites the body to {items, userId}, taking
	// the user id from the verified identity.
	SpecialCheckout
)

// BasePrefix is the path prefix shared by every gateway route.
const BasePrefix = "/api-gateway"

// Route describes one gateway endpoint: where it forwards requests
// and who may call it. Routes are built once at startup and never
// change while serving.
type Route struct {
	Method      string
	Prefix      string  // domain mount point under BasePrefix, e.g. "marca"
	Pattern     string  // chi pattern relative to the prefix, "/" for the root
	Service     Service // upstream that owns the resource
	Path        string  // upstream path template with chi-style {params}
	Permissions []string
	Auth        bool
	Body        BodyMode
	Action      string // what the route does, used in error messages
	Special     Special
}

// GatewayPattern returns the full chi pattern the route registers under.
func (rt Route) GatewayPattern() string {
	p := BasePrefix + "/" + rt.Prefix
	if rt.Pattern != "/" {
		p += rt.Pattern
	}
	return p
}
