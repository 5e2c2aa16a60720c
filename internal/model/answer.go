package model

import "time"

// ResponseValue carries the raw value for exactly one modality. Pointer
// fields distinguish an absent value from a legitimate zero.
type ResponseValue struct {
	Scale  *int   `json:"scale,omitempty" bson:"scale,omitempty"`   // AGREE: 1-5
	Option string `json:"option,omitempty" bson:"option,omitempty"` // CHOICE: exact option string
	Slider *int   `json:"slider,omitempty" bson:"slider,omitempty"` // SLIDER: integer in [min,max]
}

// AnswerSet maps question IDs to raw values. Possibly incomplete;
// missing entries score as zero effect.
type AnswerSet map[string]ResponseValue

// Answer is one recorded response within a session
type Answer struct {
	QuestionID string        `json:"questionId" bson:"questionId"`
	Response   ResponseValue `json:"response" bson:"response"`
	AnsweredAt time.Time     `json:"answeredAt" bson:"answeredAt"`
}

func (a *Answer) HasResponse() bool {
	return a.Response.Scale != nil || a.Response.Option != "" || a.Response.Slider != nil
}

// RecordAnswerRequest is the request body for recording an answer
type RecordAnswerRequest struct {
	QuestionID string        `json:"questionId"`
	Response   ResponseValue `json:"response"`
}

// RecordAnswerResponse acknowledges the answer and hands over the next question
type RecordAnswerResponse struct {
	Recorded     bool      `json:"recorded"`
	Done         bool      `json:"done"`
	NextQuestion *Question `json:"nextQuestion,omitempty"`
}
