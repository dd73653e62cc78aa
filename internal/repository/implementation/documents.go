package implementation

// Document names under the data directory. One file per collection.
const (
	DocMessages    = "messages.json"
	DocEmployee    = "employee.json"
	DocPolicies    = "policies.json"
	DocLeaveCases  = "leave_cases.json"
	DocPolicyIndex = "policy.index.json"
	DocPolicyText  = "policy.txt"
)
