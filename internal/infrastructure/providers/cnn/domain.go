package cnn

// DefaultAPIURL is the dataviz endpoint serving the fear & greed graph data
const DefaultAPIURL = "https://production.dataviz.cnn.io/index/fearandgreed/"

// GraphDataDTO is the subset of the graph data document we read
type GraphDataDTO struct {
	FearAndGreed *FearAndGreedDTO `json:"fear_and_greed"`
}

// FearAndGreedDTO holds the current index reading
type FearAndGreedDTO struct {
	Score     *float64 `json:"score"`
	Rating    string   `json:"rating"`
	Timestamp string   `json:"timestamp"`
}
