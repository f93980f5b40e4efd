package metrics

const Namespace = "storefront"

const (
	CredentialStoreTypeRedis  = "redis"
	CredentialStoreTypeFile   = "file"
	CredentialStoreTypeMemory = "memory"
)
