package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Asset bucket layout
const (
	// AssetBucketPrefix matches the original card_assets bucket name.
	AssetBucketPrefix = "card_assets"
)
