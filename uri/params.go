package uri

// Well-known media.
const (
	MediaUDP = "udp"
	MediaIPC = "ipc"
)

// Well-known channel parameter keys.
const (
	ParamEndpoint      = "endpoint"
	ParamInterface     = "interface"
	ParamControl       = "control"
	ParamControlMode   = "control-mode"
	ParamTTL           = "ttl"
	ParamMTU           = "mtu"
	ParamTermLength    = "term-length"
	ParamInitialTermID = "init-term-id"
	ParamTermID        = "term-id"
	ParamTermOffset    = "term-offset"
	ParamReliable      = "reliable"
	ParamTags          = "tags"
	ParamSessionID     = "session-id"
	ParamLinger        = "linger"
	ParamSparse        = "sparse"
	ParamAlias         = "alias"
)

// Values of the "control-mode" parameter.
const (
	ControlModeManual  = "manual"
	ControlModeDynamic = "dynamic"
)
