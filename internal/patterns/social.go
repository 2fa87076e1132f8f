package patterns

import (
	"fmt"
	"sort"
	"time"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// followWindow bounds how soon after a check-in a chat message counts as
// reaching out.
const followWindow = 2 * time.Hour

// DetectSocialEmotional finds states that are usually followed by a chat
// message within followWindow (exclusive of the check-in instant).
func DetectSocialEmotional(entries []eventlog.Entry) []Insight {
	insights := make([]Insight, 0)

	var chats []time.Time
	for _, e := range entries {
		if e.Kind == eventlog.KindChatMessage {
			chats = append(chats, e.CreatedAt)
		}
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i].Before(chats[j]) })

	groups := groupByState(stateSamples(entries))
	for _, state := range sortedKeys(groups) {
		samples := groups[state]
		if len(samples) < minStateSamples {
			continue
		}

		followed := 0
		for _, s := range samples {
			if chatWithin(chats, s.entry.CreatedAt, followWindow) {
				followed++
			}
		}
		ratio := float64(followed) / float64(len(samples))
		if ratio <= socialFollowRatio {
			continue
		}
		insights = append(insights, Insight{
			Type:        TypeSocialEmotional,
			Title:       fmt.Sprintf("Reaching out when %s", state),
			Description: fmt.Sprintf("After feeling %s you usually start a conversation within two hours.", state),
			Confidence:  clamp(scaled(len(samples), socialDivisor, socialCap)),
			DataPoints:  len(samples),
			Metadata: map[string]float64{
				MetaFollowedRatio: ratio,
				MetaSampleSize:    float64(len(samples)),
			},
		})
	}
	return insights
}

// chatWithin reports whether any chat falls in (t, t+window]. chats must be sorted.
func chatWithin(chats []time.Time, t time.Time, window time.Duration) bool {
	i := sort.Search(len(chats), func(i int) bool { return chats[i].After(t) })
	return i < len(chats) && !chats[i].After(t.Add(window))
}
