package usecase

import (
	"strings"

	"github.com/prasetyowira/matchday/internal/platform/jsonprobe"
)

// collectMatchObjects walks the matches-by-league response, which nests
// match lists either directly under results, under a per-block "matches"
// list, or one level deeper under per-stage blocks.
func collectMatchObjects(doc map[string]any) []map[string]any {
	results, ok := jsonprobe.Slice(doc, "results")
	if !ok {
		return nil
	}

	var out []map[string]any
	for _, block := range results {
		blockMap, ok := block.(map[string]any)
		if !ok {
			continue
		}
		if matches, ok := jsonprobe.Slice(blockMap, "matches"); ok {
			out = append(out, onlyMaps(matches)...)
			continue
		}
		if stages, ok := jsonprobe.Slice(blockMap, "stage"); ok {
			for _, stage := range stages {
				stageMap, ok := stage.(map[string]any)
				if !ok {
					continue
				}
				if matches, ok := jsonprobe.Slice(stageMap, "matches"); ok {
					out = append(out, onlyMaps(matches)...)
				}
			}
			continue
		}
		if _, ok := jsonprobe.Int(blockMap, "id"); ok {
			out = append(out, blockMap)
		}
	}
	return out
}

func onlyMaps(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func matchObjectID(m map[string]any) (int64, bool) {
	return jsonprobe.Int(m, "id")
}

func isFinishedStatus(m map[string]any) bool {
	status, _ := jsonprobe.String(m, "status")
	return strings.EqualFold(strings.TrimSpace(status), "finished")
}
