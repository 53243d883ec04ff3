package schema

// Verdict is the outcome of checking one product against a requirement
// record. Pass is the logical AND of all clauses that were actually
// checked; clauses skipped for missing data do not affect it.
type Verdict struct {
	Pass    bool     `json:"pass" yaml:"pass"`
	Details []string `json:"details" yaml:"details"`
}
