package fc

// Wire types for the resource APIs. The same struct is used for requests
// and responses where the service does so; omitempty keeps response-only
// fields out of request payloads.

type LogConfig struct {
	Project  string `json:"project,omitempty"`
	Logstore string `json:"logstore,omitempty"`
}

type VPCConfig struct {
	VPCID           string   `json:"vpcId,omitempty"`
	VSwitchIDs      []string `json:"vSwitchIds,omitempty"`
	SecurityGroupID string   `json:"securityGroupId,omitempty"`
}

type NASMountPoint struct {
	ServerAddr string `json:"serverAddr,omitempty"`
	MountDir   string `json:"mountDir,omitempty"`
}

type NASConfig struct {
	UserID      int             `json:"userId,omitempty"`
	GroupID     int             `json:"groupId,omitempty"`
	MountPoints []NASMountPoint `json:"mountPoints,omitempty"`
}

type Service struct {
	ServiceName      string     `json:"serviceName,omitempty"`
	ServiceID        string     `json:"serviceId,omitempty"`
	Description      string     `json:"description,omitempty"`
	Role             string     `json:"role,omitempty"`
	LogConfig        *LogConfig `json:"logConfig,omitempty"`
	VPCConfig        *VPCConfig `json:"vpcConfig,omitempty"`
	NASConfig        *NASConfig `json:"nasConfig,omitempty"`
	InternetAccess   *bool      `json:"internetAccess,omitempty"`
	CreatedTime      string     `json:"createdTime,omitempty"`
	LastModifiedTime string     `json:"lastModifiedTime,omitempty"`
}

type ServiceList struct {
	Services  []Service `json:"services"`
	NextToken string    `json:"nextToken,omitempty"`
}

// Code points at the function code package: either an object in OSS or an
// inline base64-encoded zip archive.
type Code struct {
	OSSBucketName string `json:"ossBucketName,omitempty"`
	OSSObjectName string `json:"ossObjectName,omitempty"`
	ZipFile       string `json:"zipFile,omitempty"`
}

type Function struct {
	FunctionName          string            `json:"functionName,omitempty"`
	FunctionID            string            `json:"functionId,omitempty"`
	Description           string            `json:"description,omitempty"`
	Runtime               string            `json:"runtime,omitempty"`
	Handler               string            `json:"handler,omitempty"`
	Initializer           string            `json:"initializer,omitempty"`
	Timeout               int               `json:"timeout,omitempty"`
	InitializationTimeout int               `json:"initializationTimeout,omitempty"`
	MemorySize            int               `json:"memorySize,omitempty"`
	EnvironmentVariables  map[string]string `json:"environmentVariables,omitempty"`
	Code                  *Code             `json:"code,omitempty"`
	CodeSize              int64             `json:"codeSize,omitempty"`
	CodeChecksum          string            `json:"codeChecksum,omitempty"`
	CreatedTime           string            `json:"createdTime,omitempty"`
	LastModifiedTime      string            `json:"lastModifiedTime,omitempty"`
}

type FunctionList struct {
	Functions []Function `json:"functions"`
	NextToken string     `json:"nextToken,omitempty"`
}

// FunctionCode is the download location of an installed code package.
type FunctionCode struct {
	URL      string `json:"url"`
	Checksum string `json:"checksum,omitempty"`
}

type Trigger struct {
	TriggerName      string      `json:"triggerName,omitempty"`
	TriggerID        string      `json:"triggerId,omitempty"`
	TriggerType      string      `json:"triggerType,omitempty"`
	InvocationRole   string      `json:"invocationRole,omitempty"`
	SourceARN        string      `json:"sourceArn,omitempty"`
	Qualifier        string      `json:"qualifier,omitempty"`
	TriggerConfig    interface{} `json:"triggerConfig,omitempty"`
	CreatedTime      string      `json:"createdTime,omitempty"`
	LastModifiedTime string      `json:"lastModifiedTime,omitempty"`
}

type TriggerList struct {
	Triggers  []Trigger `json:"triggers"`
	NextToken string    `json:"nextToken,omitempty"`
}

type ServiceVersion struct {
	VersionID        string `json:"versionId,omitempty"`
	Description      string `json:"description,omitempty"`
	CreatedTime      string `json:"createdTime,omitempty"`
	LastModifiedTime string `json:"lastModifiedTime,omitempty"`
}

type VersionList struct {
	Versions  []ServiceVersion `json:"versions"`
	NextToken string           `json:"nextToken,omitempty"`
}

type Alias struct {
	AliasName               string             `json:"aliasName,omitempty"`
	VersionID               string             `json:"versionId,omitempty"`
	Description             string             `json:"description,omitempty"`
	AdditionalVersionWeight map[string]float64 `json:"additionalVersionWeight,omitempty"`
	CreatedTime             string             `json:"createdTime,omitempty"`
	LastModifiedTime        string             `json:"lastModifiedTime,omitempty"`
}

type AliasList struct {
	Aliases   []Alias `json:"aliases"`
	NextToken string  `json:"nextToken,omitempty"`
}

type PathConfig struct {
	Path         string `json:"path,omitempty"`
	ServiceName  string `json:"serviceName,omitempty"`
	FunctionName string `json:"functionName,omitempty"`
	Qualifier    string `json:"qualifier,omitempty"`
}

type RouteConfig struct {
	Routes []PathConfig `json:"routes,omitempty"`
}

type CertConfig struct {
	CertName    string `json:"certName,omitempty"`
	Certificate string `json:"certificate,omitempty"`
	PrivateKey  string `json:"privateKey,omitempty"`
}

type CustomDomain struct {
	DomainName       string       `json:"domainName,omitempty"`
	Protocol         string       `json:"protocol,omitempty"`
	APIVersion       string       `json:"apiVersion,omitempty"`
	RouteConfig      *RouteConfig `json:"routeConfig,omitempty"`
	CertConfig       *CertConfig  `json:"certConfig,omitempty"`
	CreatedTime      string       `json:"createdTime,omitempty"`
	LastModifiedTime string       `json:"lastModifiedTime,omitempty"`
}

type CustomDomainList struct {
	CustomDomains []CustomDomain `json:"customDomains"`
	NextToken     string         `json:"nextToken,omitempty"`
}

type ResourceTags struct {
	ResourceARN string            `json:"resourceArn"`
	Tags        map[string]string `json:"tags"`
}

// UntagResourceInput removes the named tag keys from a resource, or every
// tag when All is set.
type UntagResourceInput struct {
	ResourceARN string   `json:"resourceArn"`
	TagKeys     []string `json:"tagKeys,omitempty"`
	All         bool     `json:"all,omitempty"`
}

type ProvisionConfig struct {
	Resource string `json:"resource,omitempty"`
	Target   int64  `json:"target"`
	Current  int64  `json:"current,omitempty"`
}

type ProvisionConfigList struct {
	ProvisionConfigs []ProvisionConfig `json:"provisionConfigs"`
	NextToken        string            `json:"nextToken,omitempty"`
}

type Destination struct {
	Destination string `json:"destination,omitempty"`
}

type DestinationConfig struct {
	OnSuccess *Destination `json:"onSuccess,omitempty"`
	OnFailure *Destination `json:"onFailure,omitempty"`
}

type AsyncConfig struct {
	DestinationConfig         *DestinationConfig `json:"destinationConfig,omitempty"`
	MaxAsyncEventAgeInSeconds int64              `json:"maxAsyncEventAgeInSeconds,omitempty"`
	MaxAsyncRetryAttempts     int64              `json:"maxAsyncRetryAttempts,omitempty"`
	StatefulInvocation        *bool              `json:"statefulInvocation,omitempty"`
	Service                   string             `json:"service,omitempty"`
	Function                  string             `json:"function,omitempty"`
	Qualifier                 string             `json:"qualifier,omitempty"`
	CreatedTime               string             `json:"createdTime,omitempty"`
	LastModifiedTime          string             `json:"lastModifiedTime,omitempty"`
}

type AsyncConfigList struct {
	Configs   []AsyncConfig `json:"configs"`
	NextToken string        `json:"nextToken,omitempty"`
}
