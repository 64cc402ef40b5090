package plugin

import "fmt"

// Verdict is the outcome of a connection rule.
type Verdict struct {
	Valid   bool
	Message string
}

// Accept is the verdict of a rule that has no objection.
func Accept() Verdict { return Verdict{Valid: true} }

// Reject builds a failing verdict.
func Reject(format string, args ...any) Verdict {
	return Verdict{Message: fmt.Sprintf(format, args...)}
}

// VerdictOf normalises whatever a validator returned. It accepts a bool, a
// Verdict or *Verdict, an error, a map with "valid" and "message" keys, or
// nil. A nil result means the validator had no objection.
func VerdictOf(v any) Verdict {
	switch r := v.(type) {
	case nil:
		return Accept()
	case bool:
		return Verdict{Valid: r}
	case Verdict:
		return r
	case *Verdict:
		if r == nil {
			return Accept()
		}
		return *r
	case error:
		return Verdict{Message: r.Error()}
	case map[string]any:
		return verdictFromMap(r)
	case map[string]bool:
		return Verdict{Valid: r["valid"]}
	default:
		return Reject("unsupported verdict %T", v)
	}
}

func verdictFromMap(m map[string]any) Verdict {
	var out Verdict
	switch valid := m["valid"].(type) {
	case bool:
		out.Valid = valid
	case nil:
	default:
		return Reject("verdict field valid is %T, want bool", valid)
	}
	if msg, ok := m["message"]; ok && msg != nil {
		out.Message = fmt.Sprint(msg)
	}
	return out
}
