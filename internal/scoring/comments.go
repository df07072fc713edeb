package scoring

import (
	"fmt"

	"sagicheck/internal/domain"
)

// buildComments emits one explanatory sentence per signal that crosses its
// threshold, in fixed evaluation order. An empty list is valid output.
func buildComments(sig domain.AnalysisSignals) []string {
	comments := []string{}
	if sig.Short5Ratio >= 0.4 {
		comments = append(comments, fmt.Sprintf("短文または無言の★5口コミが全体の%d%%を占めています。", int(sig.Short5Ratio*100)))
	}
	if sig.Burst7DayRatio >= 0.4 {
		comments = append(comments, "短期間に口コミが集中して投稿されており、不自然な増え方です。")
	}
	if sig.RatingDiff != nil && *sig.RatingDiff >= 0.5 {
		comments = append(comments, "Googleと食べログの評価差が大きく、Google側の評価が高めに出ています。")
	}
	if sig.TabelogMissing {
		comments = append(comments, "食べログに情報がほとんどなく、Googleのみ口コミが集まっています。")
	}
	if sig.FraudKeywordRatio > 0 {
		comments = append(comments, "『詐欺』『ぼったくり』などのネガティブなキーワードを含む口コミが複数見つかりました。")
	}
	return comments
}
