package util

import "sort"

// maxSuggestionDistance is the largest edit distance at which a name is still suggested
const maxSuggestionDistance = 2

// FindSimilar returns up to maxResults candidates within edit distance 2 of target, closest
// first. When some candidate is a single edit away only those are returned. Exact matches are
// never suggested.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return nil
	}

	type suggestion struct {
		name     string
		distance int
	}

	var found []suggestion
	seen := make(map[string]bool, len(candidates))
	minDistance := maxSuggestionDistance + 1
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true

		distance := LevenshteinDistance(target, name)
		if distance == 0 || distance > maxSuggestionDistance {
			continue
		}
		found = append(found, suggestion{name: name, distance: distance})
		minDistance = min(minDistance, distance)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].distance < found[j].distance
	})

	var result []string
	for _, s := range found {
		if s.distance > minDistance {
			break
		}
		if len(result) == maxResults {
			break
		}
		result = append(result, s.name)
	}

	return result
}

// LevenshteinDistance calculates the Levenshtein distance between two strings
func LevenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	dp := make([][]int, len(s1)+1)
	for i := range dp {
		dp[i] = make([]int, len(s2)+1)
		dp[i][0] = i
	}
	for j := range dp[0] {
		dp[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = min(dp[i-1][j], dp[i][j-1], dp[i-1][j-1]) + 1
			}
		}
	}

	return dp[len(s1)][len(s2)]
}
