package model

// ServiceKind identifies one of the portal's request categories.
type ServiceKind string

const (
	KindOuting     ServiceKind = "outing"
	KindXerox      ServiceKind = "xerox"
	KindMess       ServiceKind = "mess"
	KindFivestar   ServiceKind = "fivestar"
	KindCCD        ServiceKind = "ccd"
	KindStationary ServiceKind = "stationary"
)

// AllKinds lists every service kind in the portal's canonical order. The feed
// aggregator relies on this order for deterministic tie-breaking.
func AllKinds() []ServiceKind {
	return []ServiceKind{KindOuting, KindXerox, KindMess, KindFivestar, KindCCD, KindStationary}
}

// ParseKind resolves a wire/CLI string into a ServiceKind.
func ParseKind(s string) (ServiceKind, bool) {
	for _, k := range AllKinds() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Endpoint returns the backend collection path for the kind. Outing requests
// live under "-requests"; every other kind is an "-orders" collection.
func (k ServiceKind) Endpoint() string {
	if k == KindOuting {
		return "outing-requests"
	}
	return string(k) + "-orders"
}

// ListKey is the JSON envelope key the backend uses for list responses.
func (k ServiceKind) ListKey() string {
	if k == KindOuting {
		return "requests"
	}
	return "orders"
}

// ItemKey is the JSON envelope key the backend uses for create responses.
func (k ServiceKind) ItemKey() string {
	if k == KindOuting {
		return "request"
	}
	return "order"
}

// DisplayName returns the human-readable label used in feeds and notifications.
func (k ServiceKind) DisplayName() string {
	switch k {
	case KindOuting:
		return "Outing Request"
	case KindXerox:
		return "Xerox Order"
	case KindMess:
		return "Mess Order"
	case KindFivestar:
		return "Five Star Order"
	case KindCCD:
		return "CCD Order"
	case KindStationary:
		return "Stationary Order"
	}
	return string(k)
}
