package domain

// MatchStats aggregates the matches produced downstream for one batch.
type MatchStats struct {
	TotalMatches int     `db:"total_matches" json:"total_matches"`
	UsersMatched int     `db:"users_matched" json:"users_matched"`
	AvgScore     float64 `db:"avg_score"     json:"avg_score"`
}
