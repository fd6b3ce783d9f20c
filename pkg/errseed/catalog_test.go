package errseed

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
)

func TestScenarios_PoolContent(t *testing.T) {
	pool := Scenarios()
	if len(pool) == 0 {
		t.Fatal("scenario pool should not be empty")
	}

	for _, s := range pool {
		if s.Message == "" || s.Service == "" || s.HTTPPath == "" {
			t.Errorf("scenario %+v has empty fields", s)
		}
		if !strings.HasPrefix(s.HTTPPath, "/") {
			t.Errorf("HTTPPath %q should be rooted", s.HTTPPath)
		}
		// Each message must supply at least 3 application frames for
		// stack-signature extraction.
		frames := 0
		for _, line := range strings.Split(s.Message, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "at ") {
				frames++
			}
		}
		if frames < 3 {
			t.Errorf("scenario for %s has %d frame lines, want >= 3", s.Service, frames)
		}
	}
}

func TestScenarios_ReturnsCopy(t *testing.T) {
	pool := Scenarios()
	pool[0].Service = "mutated"

	if Scenarios()[0].Service == "mutated" {
		t.Error("Scenarios should return a copy, not the backing slice")
	}
}

var versionPattern = regexp.MustCompile(`^v[1-3]\.[0-9]\.[0-9]{1,2}$`)

func TestRandomDraws_WithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	validStatus := make(map[int]bool)
	for _, code := range statusCodes {
		validStatus[code] = true
	}

	for i := 0; i < 500; i++ {
		if v := randomVersion(rng); !versionPattern.MatchString(v) {
			t.Fatalf("version %q out of documented form", v)
		}
		if code := pickStatusCode(rng); !validStatus[code] {
			t.Fatalf("status code %d not in documented set", code)
		}
		if line := randomLineNumber(rng); line < 100 || line > 500 {
			t.Fatalf("line number %d out of [100,500]", line)
		}
		user := randomUser(rng)
		if !strings.HasPrefix(user, "user_") || len(user) != len("user_99999") {
			t.Fatalf("user %q out of documented form", user)
		}
		ip := randomRemoteIP(rng)
		if !strings.HasPrefix(ip, "192.168.") || strings.Contains(ip, ".0.") || strings.HasSuffix(ip, ".0") {
			t.Fatalf("remote IP %q out of documented range", ip)
		}
	}
}

func TestRandomFeatureFlags_CoversAllNames(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	flags := randomFeatureFlags(rng)

	if len(flags) != len(featureFlagNames) {
		t.Fatalf("got %d flags, want %d", len(flags), len(featureFlagNames))
	}
	for _, name := range featureFlagNames {
		v, ok := flags[name]
		if !ok {
			t.Errorf("flag %q missing", name)
			continue
		}
		if _, isBool := v.(bool); !isBool {
			t.Errorf("flag %q is %T, want bool", name, v)
		}
	}
}

func TestPickScenario_Deterministic(t *testing.T) {
	a := pickScenario(rand.New(rand.NewSource(5)))
	b := pickScenario(rand.New(rand.NewSource(5)))

	if a.Service != b.Service {
		t.Errorf("same seed drew %q and %q", a.Service, b.Service)
	}
}
