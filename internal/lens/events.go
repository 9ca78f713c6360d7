package lens

// Event topics published by the lens plugin.
const (
	// TopicFlapDetected carries a *ifevent.FlapReport for each interface
	// flagged by the continuous detector.
	TopicFlapDetected = "lens.flap.detected"
)
