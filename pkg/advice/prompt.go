package advice

import (
	"fmt"
	"strings"

	"github.com/dayline/dayline/pkg/history"
	"github.com/dayline/dayline/pkg/profile"
)

// Summary group names read by the prompt. A group that is not configured counts as zero.
const (
	GroupSleep      = "sleep"
	GroupStudy      = "study"
	GroupSmartphone = "smartphone"
	GroupUnknown    = "unknown"
)

func AveragesOf(summary history.Summary) Averages {
	avg := func(name string) float64 {
		v, _ := summary.Average(name)
		return v
	}
	return Averages{
		Sleep:      avg(GroupSleep),
		Study:      avg(GroupStudy),
		Smartphone: avg(GroupSmartphone),
		Unknown:    avg(GroupUnknown),
	}
}

// BuildPrompt asks for short, friendly feedback on the targets, with concrete suggestions for
// smartphone and unremembered time.
func BuildPrompt(p profile.Profile, averages Averages) string {
	var b strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&b, "%sさんへ\n\n", p.Name)
	}
	b.WriteString("以下はあなたの1週間の平均データです。\n")
	fmt.Fprintf(&b, "・平均睡眠時間: %.1f 時間/日 (目標: %d 時間)\n", averages.Sleep, p.TargetSleep)
	fmt.Fprintf(&b, "・平均勉強時間: %.1f 時間/日 (目標: %d 時間)\n", averages.Study, p.TargetStudy)
	fmt.Fprintf(&b, "・スマホ使用時間: %.1f 時間/日\n", averages.Smartphone)
	fmt.Fprintf(&b, "・覚えていない時間: %.1f 時間/日\n\n", averages.Unknown)
	b.WriteString("目標を達成できているか確認し、フィードバックをしてください。\n")
	b.WriteString("特に「スマホ」と「覚えていない時間」は無駄に過ごしている可能性が高いため、")
	b.WriteString("改善方法を含めて具体的な提案を優しく短く出してください。\n")
	return b.String()
}
