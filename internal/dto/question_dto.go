package dto

type ImproveQuestionRequest struct {
	Question string `json:"question" validate:"required"`
}

type ImproveQuestionResponse struct {
	ImprovedQuestion string `json:"improvedQuestion"`
	Explanation      string `json:"explanation"`
}
