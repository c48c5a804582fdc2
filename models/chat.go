package models

import "time"

// ChatTurn is a single message in a conversation, from either side.
type ChatTurn struct {
	Role      string    `bson:"role" json:"role"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ChatSession is the stored transcript of one assistant conversation.
// The session id doubles as the document id.
// Collection: chat_history
type ChatSession struct {
	ID        string     `bson:"_id" json:"session_id"`
	UserID    string     `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Turns     []ChatTurn `bson:"turns" json:"turns"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
