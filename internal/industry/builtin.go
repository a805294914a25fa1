// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package industry

// Builtin returns the bundles that ship with the CLI, keyed by industry
// identifier. Callers receive a fresh map and may overlay their own.
func Builtin() map[string]Config {
	return map[string]Config{
		"finance": financeConfig,
		"tech":    techConfig,
	}
}

var financeConfig = Config{
	Name:           "Financial Markets",
	FilenamePrefix: "financial_markets_",
	AssistantPrompt: "You are a senior research assistant specializing in financial " +
		"market conditions. Follow the instructions carefully and answer in the requested format.",
	SynthesizerPrompt: "You are a professional financial markets analyst producing an " +
		"objective market analysis report from collected information. Follow the instructions " +
		"strictly and cite sources using the `[Source: URL]` format.",
	AnalyzerKeywords: []string{
		"stock", "equities", "index", "S&P 500", "Nasdaq", "Dow Jones", "Hang Seng",
		"rally", "decline", "gain", "loss", "volume", "turnover", "volatility",
		"P/E", "valuation", "sector", "bellwether",
		"macroeconomic", "interest rate", "inflation", "rate hike", "rate cut",
		"earnings", "guidance", "bullish", "bearish", "risk", "opportunity",
		"forecast", "outlook", "IPO", "merger", "central bank",
	},
	PlanTemplate: `Break the user's main question about the {{.IndustryName}} industry into a list of specific, searchable sub-questions that together analyze the topic comprehensively.
Cover the market overview, key benchmarks and indicators, notable sectors and companies, relevant news events, macroeconomic and policy influences, and technical trends where the information allows.
Respond strictly in the following JSON format with no additional explanation or commentary:
{
  "subqueries": [
    "Sub-question 1: How is the {{.IndustryName}} performing overall?",
    "Sub-question 2: What is the state of the major benchmarks (indexes, rates)?",
    "Sub-question 3: Which hot sectors or themes deserve attention?",
    "Sub-question 4: What significant industry news or policy releases are there?",
    "Sub-question 5: (optional, if applicable) How are specific companies or assets performing?"
  ]
}

User's main question: "{{.Question}}"`,
	ReflectionTemplate: `As a {{.IndustryName}} research evaluator, assess the information collected so far to answer the user's original question.

Original question: "{{.Question}}"

Summaries collected so far (possibly truncated):
{{.Context}}

Evaluate:
1. can_answer: Is this information comprehensive enough to answer the original {{.IndustryName}} question? (true/false)
2. irrelevant_urls: Are any entries clearly irrelevant to the original question or of low informational value? (List only those entries' source URLs; use an empty list [] if none.)
3. new_subqueries: Based on the current information and the original question, which specific new sub-questions are still needed to obtain key industry data or clarify the current situation? (Return an empty list [] if the information is sufficient.)

Respond strictly in the following JSON format with no additional explanation or commentary:
{
    "can_answer": boolean,
    "irrelevant_urls": ["url1", "url2"],
    "new_subqueries": ["new question 1", "new question 2"]
}`,
	SynthesisTemplate: `You are a professional {{.IndustryName}} analyst. Based on the information fragments below, collected through web searches, produce a comprehensive, well-structured, and neutral industry analysis report answering the user's original question.

The user's original question: "{{.Question}}"

Collected industry information (mainly news and web page summaries):
--- BEGIN INFORMATION ---
{{.Context}}
--- END INFORMATION ---
{{.DigestSection}}
Write the report under these strict requirements:
1. Base the report entirely on the information fragments above. Do not add outside knowledge, personal opinions, or unverified precise figures unless the fragments state them.
2. Organize the content clearly and answer the original question directly, using headings where appropriate (e.g. Market Overview, Key Trends, Major Players, Notable News, Summary and Outlook).
3. Cite the source of every piece of information you use, in the form [Source: URL] immediately after it. Keep URLs complete and inside the brackets.
4. If a data scan summary is provided, weave its findings (keyword frequencies, detected values or percentages) into the report and note that they come from a preliminary scan of the provided text. Do not treat scanned numbers as precise real-time data.
5. Keep the language professional, objective, and neutral. Avoid overly optimistic or pessimistic wording and do not give direct investment advice.
6. Point out contradictions between fragments objectively where they exist.
7. State explicitly where the collected information is insufficient to answer part of the question.
8. Close with a brief summary or outlook grounded only in the provided information.

Begin your {{.IndustryName}} analysis report:`,
}

var techConfig = Config{
	Name:           "Technology Industry",
	FilenamePrefix: "technology_industry_",
	AssistantPrompt: "You are a senior research assistant specializing in technology " +
		"industry developments. Follow the instructions carefully and answer in the requested format.",
	SynthesizerPrompt: "You are a professional technology industry analyst producing an " +
		"objective industry analysis report from collected information. Follow the instructions " +
		"strictly and cite sources using the `[Source: URL]` format.",
	AnalyzerKeywords: []string{
		"artificial intelligence", "AI", "machine learning", "chip", "semiconductor",
		"cloud computing", "big data", "software", "hardware", "internet",
		"SaaS", "PaaS", "IaaS", "IoT", "5G", "6G", "metaverse", "VR", "AR",
		"startup", "funding", "venture capital", "VC", "IPO", "layoff", "merger", "M&A",
		"Apple", "Google", "Microsoft", "Amazon", "Meta", "Tencent", "Alibaba", "Huawei",
		"innovation", "R&D", "patent", "trend", "regulation", "data privacy", "cybersecurity",
	},
	PlanTemplate: `Break the user's main question about the {{.IndustryName}} into a list of specific, searchable sub-questions that together analyze the topic comprehensively.
Cover market size and growth, key technology areas, major company developments (products, strategy, earnings), investment and funding activity, recent industry news, and policy or regulatory influences.
Respond strictly in the following JSON format with no additional explanation or commentary:
{
  "subqueries": [
    "Sub-question 1: What are the overall development trends in the {{.IndustryName}}?",
    "Sub-question 2: What progress has been made in key technology areas (e.g. AI, cloud computing)?",
    "Sub-question 3: What important moves have major technology companies made recently?",
    "Sub-question 4: What is the recent investment and funding picture in the {{.IndustryName}}?",
    "Sub-question 5: What notable industry news or policy releases are there?"
  ]
}

User's main question: "{{.Question}}"`,
	ReflectionTemplate: `As a {{.IndustryName}} research evaluator, assess the information collected so far to answer the user's original question.

Original question: "{{.Question}}"

Summaries collected so far (possibly truncated):
{{.Context}}

Evaluate:
1. can_answer: Is this information comprehensive enough to answer the original {{.IndustryName}} question? (true/false)
2. irrelevant_urls: Are any entries clearly irrelevant to the original question or of low informational value? (List only those entries' source URLs; use an empty list [] if none.)
3. new_subqueries: Based on the current information and the original question, which specific new sub-questions are still needed to obtain key industry data or clarify the current situation? (Return an empty list [] if the information is sufficient.)

Respond strictly in the following JSON format with no additional explanation or commentary:
{
    "can_answer": boolean,
    "irrelevant_urls": ["url1", "url2"],
    "new_subqueries": ["new question 1", "new question 2"]
}`,
	SynthesisTemplate: `You are a professional {{.IndustryName}} analyst. Based on the information fragments below, collected through web searches, produce a comprehensive, well-structured, and neutral industry analysis report answering the user's original question.

The user's original question: "{{.Question}}"

Collected industry information (mainly news and web page summaries):
--- BEGIN INFORMATION ---
{{.Context}}
--- END INFORMATION ---
{{.DigestSection}}
Write the report under these strict requirements:
1. Base the report entirely on the information fragments above. Do not add outside knowledge, personal opinions, or unverified precise figures unless the fragments state them.
2. Organize the content clearly and answer the original question directly, using headings where appropriate (e.g. Industry Overview, Technology Trends, Major Company Developments, Investment Activity, Summary and Outlook).
3. Cite the source of every piece of information you use, in the form [Source: URL] immediately after it. Keep URLs complete and inside the brackets.
4. If a data scan summary is provided, weave its findings (keyword frequencies, detected values or percentages) into the report and note that they come from a preliminary scan of the provided text. Do not treat scanned numbers as precise real-time data.
5. Keep the language professional, objective, and neutral. Avoid overly optimistic or pessimistic wording and do not give direct business advice.
6. Point out contradictions between fragments objectively where they exist.
7. State explicitly where the collected information is insufficient to answer part of the question.
8. Close with a brief summary or outlook grounded only in the provided information.

Begin your {{.IndustryName}} analysis report:`,
}
