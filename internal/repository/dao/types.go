package dao

// aggregateCount Hasura 聚合查询的返回结构
type aggregateCount struct {
	Aggregate struct {
		Count int64 `json:"count"`
	} `json:"aggregate"`
}
