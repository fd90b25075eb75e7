package dto

// PageTextDTO is the extracted text of one PDF page.
type PageTextDTO struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

type ExtractTextResponse struct {
	ExtractedText []PageTextDTO `json:"extractedText"`
	Summary       string        `json:"summary"`
	TextLength    int           `json:"text_length"` // word count of the summary
}

// QueryDocumentRequest asks a question against previously extracted pages.
type QueryDocumentRequest struct {
	Query         string        `json:"query" binding:"required"`
	ExtractedText []PageTextDTO `json:"extractedText" binding:"required"`
}

type QueryDocumentResponse struct {
	Answer string `json:"answer"`
}
