package authz

import (
	"net/http"
	"strings"
)

// Access is the requirement a rule places on matching requests.
type Access int

const (
	// AccessPublic routes need no token at all.
	AccessPublic Access = iota
	// AccessAuthenticated routes need a valid token, any role.
	AccessAuthenticated
	// AccessRole routes need a valid token carrying a specific role.
	AccessRole
)

// Decision is the outcome of evaluating the policy for a request.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated means the request needs a valid token it did
	// not present.
	DenyUnauthenticated
	// DenyForbidden means the caller is authenticated but lacks the
	// required role.
	DenyForbidden
)

// Rule maps a method and path pattern to an access requirement.
// Method "" matches every method. Patterns are either exact paths or
// prefixes ending in "/**".
type Rule struct {
	Method  string
	Pattern string
	Access  Access
	Role    string
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	if prefix, ok := strings.CutSuffix(r.Pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return r.Pattern == path
}

// Policy is an ordered rule table. Evaluation takes the first matching
// rule; requests matching no rule are denied unless authenticated.
type Policy struct {
	rules []Rule
}

func New(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultRules is the shipped route policy. Project, client and
// invoice routes are deliberately public while /api/admin/** requires
// the ADMIN role; swap this table to tighten the surface.
func DefaultRules() []Rule {
	return []Rule{
		{Method: http.MethodPost, Pattern: "/api/auth/login", Access: AccessPublic},
		{Method: http.MethodPost, Pattern: "/api/users/register", Access: AccessPublic},
		{Pattern: "/api/public/**", Access: AccessPublic},
		{Pattern: "/api/projects/**", Access: AccessPublic},
		{Pattern: "/api/clients/**", Access: AccessPublic},
		{Pattern: "/api/invoices/**", Access: AccessPublic},
		{Method: http.MethodGet, Pattern: "/api/health", Access: AccessPublic},
		{Pattern: "/api/admin/**", Access: AccessRole, Role: "ADMIN"},
	}
}

// Decide evaluates the policy for a request. It is a pure function of
// its inputs and performs no I/O.
func (p *Policy) Decide(method, path, role string, authenticated bool) Decision {
	for _, rule := range p.rules {
		if !rule.matches(method, path) {
			continue
		}
		switch rule.Access {
		case AccessPublic:
			return Allow
		case AccessAuthenticated:
			if authenticated {
				return Allow
			}
			return DenyUnauthenticated
		case AccessRole:
			if !authenticated {
				return DenyUnauthenticated
			}
			if strings.EqualFold(role, rule.Role) {
				return Allow
			}
			return DenyForbidden
		}
	}

	if authenticated {
		return Allow
	}
	return DenyUnauthenticated
}

// IsPublic reports whether the route bypasses the token requirement
// entirely.
func (p *Policy) IsPublic(method, path string) bool {
	return p.Decide(method, path, "", false) == Allow
}
