package solution

import "github.com/archlens/archlens/catalog"

// The lookup tables below are literally ordered: lookups scan from the
// top and take the first match, so later entries are unreachable once an
// earlier one matches. Do not replace them with maps.

// specificOutcomes is keyed by the alphabetic rule-id prefix. The value
// is a format template applied to the lower-cased rule title.
var specificOutcomes = []struct {
	Prefix   string
	Template string
}{
	{"SEC", "Implement %s to enhance security posture"},
	{"REL", "Establish %s to improve system reliability"},
	{"PERF", "Optimize %s to enhance performance"},
	{"COST", "Implement %s to reduce costs"},
	{"OPS", "Establish %s to improve operations"},
	{"SUS", "Implement %s to reduce environmental impact"},
}

// specificFallback applies when no prefix entry matches.
const specificFallback = "Implement %s"

// measurableCriteria is keyed by pillar.
var measurableCriteria = []struct {
	Pillar catalog.Pillar
	Text   string
}{
	{catalog.PillarSecurity, "Security controls implemented and validated, compliance score improved"},
	{catalog.PillarReliability, "System availability metrics improved, MTTR reduced"},
	{catalog.PillarPerformanceEfficiency, "Performance benchmarks met, response times improved"},
	{catalog.PillarCostOptimization, "Cost reduction achieved, utilization metrics improved"},
	{catalog.PillarOperationalExcellence, "Operational metrics improved, incident response time reduced"},
}

const measurableFallback = "Implementation validated against best practice criteria"

// relevanceStatements is keyed by pillar.
var relevanceStatements = []struct {
	Pillar catalog.Pillar
	Text   string
}{
	{catalog.PillarSecurity, "Critical for protecting business data and maintaining customer trust"},
	{catalog.PillarReliability, "Essential for business continuity and customer satisfaction"},
	{catalog.PillarPerformanceEfficiency, "Important for user experience and operational efficiency"},
	{catalog.PillarCostOptimization, "Directly impacts bottom line and resource efficiency"},
	{catalog.PillarOperationalExcellence, "Fundamental for scalable and maintainable operations"},
	{catalog.PillarSustainability, "Supports corporate sustainability goals and compliance"},
}

const relevanceFallback = "Supports overall architectural excellence"

// achievableRationales is keyed by complexity.
var achievableRationales = map[Complexity]string{
	ComplexityLow:    "Low complexity implementation using existing services and tooling",
	ComplexityMedium: "Moderate effort required with standard patterns and practices",
	ComplexityHigh:   "Complex but achievable with proper planning and phased approach",
}

// timelines is keyed by complexity.
var timelines = map[Complexity]string{
	ComplexityLow:    "2-4 weeks",
	ComplexityMedium: "6-12 weeks",
	ComplexityHigh:   "3-6 months",
}

// patternReferences maps title keywords to reference architecture URLs.
// Scanned in order; the first keyword found in the lower-cased title
// wins.
var patternReferences = []struct {
	Keyword string
	URL     string
}{
	{"multi-az", "https://aws.amazon.com/architecture/reference-architecture-diagrams/"},
	{"backup", "https://aws.amazon.com/architecture/backup-recovery/"},
	{"monitoring", "https://aws.amazon.com/architecture/well-architected/"},
	{"security", "https://aws.amazon.com/architecture/security-identity-compliance/"},
	{"cost", "https://aws.amazon.com/architecture/cost-optimization/"},
}

// defaultPatternReference applies when no keyword matches.
const defaultPatternReference = "https://aws.amazon.com/architecture/"

// basePrerequisites apply to every solution; pillar-specific entries are
// appended by the synthesizer.
var basePrerequisites = []string{
	"AWS account access",
	"Appropriate IAM permissions",
}

// successCriteria is identical for every rule.
var successCriteria = []string{
	"Implementation completed as designed",
	"All tests passed successfully",
	"Documentation updated",
	"Team trained on new processes",
}

// Rollback sentences, selected by reversibility.
const (
	rollbackReversible   = "Configuration can be reverted through the console or IaC templates"
	rollbackIrreversible = "Rollback requires careful planning - document current state before changes"
)
