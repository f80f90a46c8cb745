package constants

// DefaultAlertColor is the attachment color of task alerts.
const DefaultAlertColor = "#960019"
