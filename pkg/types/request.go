package types

type TranslateRequest struct {
	Text        string `json:"text"`
	Source      string `json:"source"`
	Target      string `json:"target"`
	Traditional bool   `json:"traditional"`
}

type TranslateResponse struct {
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation"`
	SourceText    string `json:"source_text"`
}

type SpeakRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type ShareRequest struct {
	SourceText    string `json:"source_text"`
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation"`
}

type ShareResponse struct {
	ShareURL string `json:"share_url"`
}
