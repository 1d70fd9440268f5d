package types

// SubscriptionRef is one entry of the configured default subscription list.
type SubscriptionRef struct {
	ID   string `json:"id" yaml:"id" toml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
}

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Subscriptions []SubscriptionRef `json:"subscriptions" yaml:"subscriptions" toml:"subscriptions"`
}
