package model

import "time"

// ResultRecord is the exportable outcome of one completed session:
// the profile plus everything a reviewer needs to retrace it.
type ResultRecord struct {
	SessionID      string    `json:"sessionId" bson:"_id"`
	Nickname       string    `json:"nickname" bson:"nickname"`
	CatalogVersion string    `json:"catalogVersion" bson:"catalogVersion"`
	Profile        Profile   `json:"profile" bson:"profile"`
	Answers        AnswerSet `json:"answers" bson:"answers"`
	Order          []string  `json:"order" bson:"order"` // presentation order shown
	AnsweredCount  int       `json:"answeredCount" bson:"answeredCount"`
	StartedAt      time.Time `json:"startedAt" bson:"startedAt"`
	CompletedAt    time.Time `json:"completedAt" bson:"completedAt"`
}

// PersonaCount is one row of the persona distribution
type PersonaCount struct {
	Persona string `json:"persona"`
	Count   int64  `json:"count"`
}
