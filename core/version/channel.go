package version

// Channel is the distribution channel a version is published to.
type Channel string

const (
	ChannelStable Channel = "stable"
	ChannelBeta   Channel = "beta"
	ChannelDev    Channel = "dev"
)

// Channel maps the identifier's prefix onto a distribution channel:
// alpha and beta builds ship to the beta channel, pre-alpha and rc builds
// to the dev channel, unprefixed versions to stable.
func (id Identifier) Channel() Channel {
	switch id.Prefix {
	case PrefixAlpha, PrefixBeta:
		return ChannelBeta
	case PrefixPreAlpha, PrefixRC:
		return ChannelDev
	default:
		return ChannelStable
	}
}

// Strict renders the base triple alone for consumers that require pure
// semantic-versioning strings. The channel prefix is dropped: this
// projection is lossy and cannot be round-tripped back to a prefixed
// identifier.
func (id Identifier) Strict() string {
	return id.Base.String()
}

// Full renders the standard serialized form, identical to String. Parsing
// the result yields the original identifier back.
func (id Identifier) Full() string {
	return id.String()
}
