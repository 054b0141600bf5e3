package catalog

// ItemKind discriminates the three purchasable unit types.
type ItemKind string

const (
	KindPlatform ItemKind = "platform"
	KindFeature  ItemKind = "feature"
	KindAddon    ItemKind = "addon"
)

// Billing cycles for service add-ons.
const (
	BillingOneTime = "one_time"
	BillingMonthly = "monthly"
)

// PlatformBase is the foundational deliverable tier (web/mobile/both)
// with a fixed starting price and bundled core feature list.
type PlatformBase struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceUSD     float64  `json:"priceUSD"`
	CoreFeatures []string `json:"coreFeatures"`
	DeliveryTime string   `json:"deliveryTime"`
}

// TechFeature is an optional, individually priced technical capability
// addable to a platform base.
type TechFeature struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceUSD    float64 `json:"priceUSD"`
}

// ServiceAddon is an optional, individually priced non-technical
// service (maintenance, training) addable to a selection.
type ServiceAddon struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PriceUSD     float64 `json:"priceUSD"`
	BillingCycle string  `json:"billingCycle"`
}
