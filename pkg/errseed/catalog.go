// catalog.go holds the static pools of synthetic error content and the
// draw helpers that parameterize generated records.

package errseed

import (
	"fmt"
	"math/rand"
)

// Scenario is one immutable entry of synthetic application-error content.
// Drawn at random per dispatch; never mutated.
type Scenario struct {
	// Message is a multi-line error description with embedded
	// "at Frame (File:line)" lines, mimicking an application stack trace.
	Message string

	// Service is the name of the service the error is attributed to.
	Service string

	// HTTPPath is the request path the error is attributed to.
	HTTPPath string
}

// scenarios are the fixed application-error triples every structured
// format draws from.
var scenarios = []Scenario{
	{
		Message: `NullPointerException: Cannot read property "id" of null` + "\n" +
			"at UserService.getUser (UserService.java:45)\n" +
			"at UserController.handleRequest (UserController.java:123)\n" +
			"at RequestHandler.process (RequestHandler.java:67)",
		Service:  "user-service",
		HTTPPath: "/api/users/12345",
	},
	{
		Message: "SQLException: Connection pool exhausted\n" +
			"at DatabasePool.getConnection (DatabasePool.java:89)\n" +
			"at OrderRepository.findById (OrderRepository.java:156)\n" +
			"at OrderService.processOrder (OrderService.java:234)",
		Service:  "order-service",
		HTTPPath: "/api/orders/process",
	},
	{
		Message: "TimeoutException: Request timed out after 5000ms\n" +
			"at HttpClient.sendRequest (HttpClient.java:78)\n" +
			"at PaymentGateway.charge (PaymentGateway.java:45)\n" +
			"at PaymentService.processPayment (PaymentService.java:123)",
		Service:  "payment-service",
		HTTPPath: "/api/payments/charge",
	},
}

// shortMessages are brief human-readable messages for the typed-event
// format, which carries no trace and groups on message text alone.
var shortMessages = []string{
	"Failed to process payment for order",
	"User session expired unexpectedly",
	"Database connection lost during query",
	"Upstream service returned malformed response",
	"Cache invalidation failed for user profile",
}

var (
	httpMethods = []string{"GET", "POST", "PUT"}

	// statusCodes are the error statuses drawn for formats with a
	// variable responseStatusCode. The reported-event format always
	// uses 500 instead.
	statusCodes = []int{400, 401, 403, 404, 500, 502, 503}

	environments = []string{"production", "staging", "development"}

	featureFlagNames = []string{"new_checkout_flow", "dark_mode", "beta_api"}
)

const (
	catalogUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"
	catalogReferrer  = "https://app.example.com"
	catalogURLBase   = "https://api.example.com"
)

// Scenarios returns a copy of the scenario pool.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

func pickScenario(rng *rand.Rand) Scenario {
	return scenarios[rng.Intn(len(scenarios))]
}

func pickShortMessage(rng *rand.Rand) string {
	return shortMessages[rng.Intn(len(shortMessages))]
}

func pickMethod(rng *rand.Rand) string {
	return httpMethods[rng.Intn(len(httpMethods))]
}

func pickStatusCode(rng *rand.Rand) int {
	return statusCodes[rng.Intn(len(statusCodes))]
}

func pickEnvironment(rng *rand.Rand) string {
	return environments[rng.Intn(len(environments))]
}

// randomVersion draws a version string v<major>.<minor>.<patch> with
// major in [1,3], minor in [0,9], patch in [0,99].
func randomVersion(rng *rand.Rand) string {
	return fmt.Sprintf("v%d.%d.%d", 1+rng.Intn(3), rng.Intn(10), rng.Intn(100))
}

// randomUser draws a user identifier user_<n> with n in [10000,99999].
func randomUser(rng *rand.Rand) string {
	return fmt.Sprintf("user_%d", 10000+rng.Intn(90000))
}

// randomRemoteIP draws an address in 192.168.0.0/16 with both host
// octets in [1,255].
func randomRemoteIP(rng *rand.Rand) string {
	return fmt.Sprintf("192.168.%d.%d", 1+rng.Intn(255), 1+rng.Intn(255))
}

// randomLineNumber draws a report-location line number in [100,500].
func randomLineNumber(rng *rand.Rand) int {
	return 100 + rng.Intn(401)
}

func randomFeatureFlags(rng *rand.Rand) map[string]any {
	flags := make(map[string]any, len(featureFlagNames))
	for _, name := range featureFlagNames {
		flags[name] = rng.Intn(2) == 0
	}
	return flags
}
