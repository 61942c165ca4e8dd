package core

// composeRules is the phrase table historically checked while an email is
// being written.
var composeRules = []PhraseRule{
	{
		Phrase:     "free",
		Severity:   SeverityHigh,
		Rationale:  "One of the most common spam trigger words",
		Suggestion: "Describe the concrete value instead, e.g. \"at no cost to your team\"",
	},
	{
		Phrase:     "act now",
		Severity:   SeverityHigh,
		Rationale:  "Pressure language typical of mass marketing",
		Suggestion: "Invite a reply without a deadline, e.g. \"whenever suits you\"",
	},
	{
		Phrase:     "limited time",
		Severity:   SeverityMedium,
		Rationale:  "Artificial scarcity reads as a sales pitch",
		Suggestion: "Drop the time pressure or give a real date",
	},
	{
		Phrase:     "urgent",
		Severity:   SeverityHigh,
		Rationale:  "Urgency from a stranger is a classic spam signal",
		Suggestion: "Explain why the timing matters instead of labelling it urgent",
	},
	{
		Phrase:     "guaranteed",
		Severity:   SeverityMedium,
		Rationale:  "Absolute promises are rarely believable in a first email",
		Suggestion: "Point to evidence, e.g. a result you delivered before",
	},
	{
		Phrase:     "click here",
		Severity:   SeverityHigh,
		Rationale:  "Generic link text is heavily penalized by filters",
		Suggestion: "Link descriptive text, e.g. \"my portfolio\"",
	},
	{
		Phrase:     "buy now",
		Severity:   SeverityHigh,
		Rationale:  "Purchase calls to action do not belong in outreach",
		Suggestion: "Ask a question that starts a conversation",
	},
	{
		Phrase:     "no obligation",
		Severity:   SeverityMedium,
		Rationale:  "Common disclaimer in promotional mail",
		Suggestion: "Leave it out; a polite ask already implies no obligation",
	},
	{
		Phrase:     "risk-free",
		Severity:   SeverityMedium,
		Rationale:  "Sales wording that filters associate with offers",
		Suggestion: "Say what the reader gets without framing it as a deal",
	},
	{
		Phrase:     "amazing",
		Severity:   SeverityLow,
		Rationale:  "Hype words make the email sound templated",
		Suggestion: "Use a specific detail instead of a superlative",
	},
	{
		Phrase:     "dear sir or madam",
		Severity:   SeverityMedium,
		Rationale:  "Generic greeting shows the email was not personalized",
		Suggestion: "Address the recipient by name",
	},
	{
		Phrase:     "to whom it may concern",
		Severity:   SeverityMedium,
		Rationale:  "Generic greeting shows the email was not personalized",
		Suggestion: "Address the recipient by name",
	},
}

// previewRules is the phrase table historically checked when an email is
// previewed before sending.
var previewRules = []PhraseRule{
	{
		Phrase:     "free",
		Severity:   SeverityMedium,
		Rationale:  "Frequently flagged promotional word",
		Suggestion: "Remove it or rephrase the benefit",
	},
	{
		Phrase:     "act now",
		Severity:   SeverityHigh,
		Rationale:  "High-pressure call to action",
		Suggestion: "Let the reader respond at their own pace",
	},
	{
		Phrase:     "limited time",
		Severity:   SeverityHigh,
		Rationale:  "Scarcity language used by promotional campaigns",
		Suggestion: "Remove the time pressure",
	},
	{
		Phrase:     "urgent",
		Severity:   SeverityMedium,
		Rationale:  "Urgency language",
		Suggestion: "Remove it or explain the real deadline",
	},
	{
		Phrase:     "guaranteed",
		Severity:   SeverityHigh,
		Rationale:  "Guarantees are a strong spam signal",
		Suggestion: "Back the claim with a concrete example",
	},
	{
		Phrase:     "click here",
		Severity:   SeverityMedium,
		Rationale:  "Generic call-to-action link",
		Suggestion: "Use descriptive link text",
	},
	{
		Phrase:     "winner",
		Severity:   SeverityHigh,
		Rationale:  "Prize language is typical of scams",
		Suggestion: "Remove it",
	},
	{
		Phrase:     "congratulations",
		Severity:   SeverityMedium,
		Rationale:  "Often opens lottery and prize scams",
		Suggestion: "Congratulate on something specific, e.g. a recent launch",
	},
	{
		Phrase:     "cash",
		Severity:   SeverityHigh,
		Rationale:  "Money words draw filter attention",
		Suggestion: "Talk about the role or the work instead of money",
	},
	{
		Phrase:     "earn money",
		Severity:   SeverityHigh,
		Rationale:  "Get-rich wording is a strong spam signal",
		Suggestion: "Remove it",
	},
	{
		Phrase:     "make money",
		Severity:   SeverityHigh,
		Rationale:  "Get-rich wording is a strong spam signal",
		Suggestion: "Remove it",
	},
	{
		Phrase:     "100%",
		Severity:   SeverityMedium,
		Rationale:  "Absolute percentages read as marketing copy",
		Suggestion: "Use a measured claim",
	},
	{
		Phrase:     "once in a lifetime",
		Severity:   SeverityMedium,
		Rationale:  "Exaggerated scarcity",
		Suggestion: "Describe the opportunity plainly",
	},
	{
		Phrase:     "exclusive deal",
		Severity:   SeverityMedium,
		Rationale:  "Deal language belongs to promotions",
		Suggestion: "Remove it",
	},
	{
		Phrase:     "special promotion",
		Severity:   SeverityMedium,
		Rationale:  "Promotion language belongs to marketing mail",
		Suggestion: "Remove it",
	},
	{
		Phrase:     "order now",
		Severity:   SeverityHigh,
		Rationale:  "Purchase call to action",
		Suggestion: "Ask for a short call or a reply instead",
	},
	{
		Phrase:     "apply now",
		Severity:   SeverityMedium,
		Rationale:  "Imperative call to action reads as a bulk campaign",
		Suggestion: "Ask whether the role is still open",
	},
	{
		Phrase:     "don't miss out",
		Severity:   SeverityMedium,
		Rationale:  "Fear-of-missing-out wording",
		Suggestion: "Remove it",
	},
	{
		Phrase:     "best price",
		Severity:   SeverityLow,
		Rationale:  "Pricing language in an outreach email",
		Suggestion: "Remove it",
	},
	{
		Phrase:     "incredible",
		Severity:   SeverityLow,
		Rationale:  "Hype word",
		Suggestion: "Use a specific detail instead",
	},
	{
		Phrase:     "amazing",
		Severity:   SeverityLow,
		Rationale:  "Hype word",
		Suggestion: "Use a specific detail instead",
	},
	{
		Phrase:     "call now",
		Severity:   SeverityHigh,
		Rationale:  "Telemarketing call to action",
		Suggestion: "Offer a couple of time slots instead",
	},
}
