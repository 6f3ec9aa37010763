package review

// KeywordEntry associates a question-level rule id prefix with the
// keyword list used to judge compliance for rules under that question.
type KeywordEntry struct {
	Prefix   string
	Keywords []string
}

// KeywordTable is an ordered list of keyword entries. Lookup scans in
// order and takes the first matching prefix, so entry order is part of
// the table's semantics and must not be replaced with a map.
type KeywordTable []KeywordEntry

// Lookup returns the keyword list for the first entry whose prefix
// matches, or nil when no entry matches.
func (t KeywordTable) Lookup(prefix string) []string {
	for _, e := range t {
		if e.Prefix == prefix {
			return e.Keywords
		}
	}
	return nil
}

// DefaultKeywordTable returns the built-in implementation-evidence
// keyword table. Keys are question-level prefixes ("SEC01"), not full
// rule ids; the classifier derives the prefix from the rule id. Rules
// whose prefix is absent classify through the empty-keyword convention.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		{"OPS01", []string{"cloudformation", "cdk", "terraform", "infrastructure as code", "iac"}},
		{"OPS02", []string{"cloudwatch", "monitoring", "logs", "alerts", "x-ray", "tracing"}},
		{"SEC01", []string{"iam", "roles", "least privilege", "mfa", "multi-factor"}},
		{"SEC02", []string{"vpc", "security groups", "waf", "network segmentation"}},
		{"REL01", []string{"multi-az", "availability zones", "backup", "disaster recovery"}},
		{"REL02", []string{"auto scaling", "scaling groups", "elasticity"}},
		{"PERF01", []string{"instance types", "compute optimizer", "right-sizing"}},
		{"PERF02", []string{"cache", "elasticache", "cloudfront", "cdn"}},
		{"COST01", []string{"cost explorer", "budgets", "cost monitoring"}},
		{"COST02", []string{"reserved instances", "savings plans", "ri"}},
		{"SUS01", []string{"utilization", "right-size", "serverless", "lambda"}},
		{"SUS02", []string{"managed services", "rds", "fargate", "serverless"}},
	}
}
