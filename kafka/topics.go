package kafka

// Topic names for storefront events.
const (
	TopicOrderEvents     = "fleur.orders"
	TopicMarketingEvents = "fleur.marketing"
	TopicAIEvents        = "fleur.ai"
)
