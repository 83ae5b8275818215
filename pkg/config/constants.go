package config

const EnvPrefix = "amborella"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "AMBORELLA_APP_ENV"
	EnvPort     = "AMBORELLA_APP_PORT"
	EnvRedisURL = "AMBORELLA_REDIS_URL"

	EnvCartFreeShippingItemCount = "AMBORELLA_CART_FREE_SHIPPING_ITEM_COUNT"
	EnvCartFreeShippingSubtotal  = "AMBORELLA_CART_FREE_SHIPPING_SUBTOTAL"
	EnvCartReducedRate           = "AMBORELLA_CART_REDUCED_RATE"
	EnvCartMidRate               = "AMBORELLA_CART_MID_RATE"
	EnvCartBaseRate              = "AMBORELLA_CART_BASE_RATE"
)
