package ffi

// Go-native mirrors of the HAPI info structs. Every exported ffi function
// returns or accepts one of these — never a C type — so packages above
// ffi never import "C" themselves (§9).

type NodeInfo struct {
	ID               NodeHandle
	ParentID         NodeHandle
	Type             NodeType
	IsValid          bool
	TotalCookCount   int32
	UniqueHoudiniNodeID int32
	ParmCount        int32
	ParmIntCount     int32
	ParmFloatCount   int32
	ParmStringCount  int32
	ParmChoiceCount  int32
	ChildNodeCount   int32
	InputCount       int32
	OutputCount      int32
	CreatorNodeID    NodeHandle
	IsTimeDependent  bool
}

type ObjectInfo struct {
	ID                 NodeHandle
	ObjectNodeID       NodeHandle
	Name               StringHandle
	HasTransformChanged bool
	HaveGeosChanged    bool
	IsVisible          bool
	IsInstancer        bool
	IsInstanced        bool
	GeoCount           int32
}

type GeoInfo struct {
	Type              int32
	NodeID            NodeHandle
	IsEditable        bool
	IsTemplated       bool
	IsDisplayGeo      bool
	HasGeoChanged     bool
	HasMaterialChanged bool
	PartCount         int32
	PointGroupCount   int32
	PrimitiveGroupCount int32
}

type PartInfo struct {
	ID                int32
	Name              StringHandle
	Type              int32
	FaceCount         int32
	VertexCount       int32
	PointCount        int32
	PointAttributeCount int32
	VertexAttributeCount int32
	PrimitiveAttributeCount int32
	DetailAttributeCount int32
	IsInstanced       bool
	InstancedPartCount int32
	InstanceCount     int32
	HasChanged        bool
}

type AttributeInfo struct {
	Exists    bool
	Owner     AttributeOwner
	Storage   AttributeStorage
	Count     int32
	TupleSize int32
	TotalArrayElements int64
	TypeInfo  int32
}

type CurveInfo struct {
	CurveType    int32
	CurveCount   int32
	VertexCount  int32
	Knotted      bool
	Periodic     bool
	Order        int32
	HasKnots     bool
	IsRational   bool
}

// InputCurveInfo mirrors HAPI_InputCurveInfo — a distinct, smaller shape
// from CurveInfo used only to configure an input-curve SOP's editable
// curve (curve type/order/closure/direction plus how breakpoints are
// interpreted), not to describe an already-cooked curve part.
type InputCurveInfo struct {
	CurveType                  int32
	Order                      int32
	Closed                     bool
	Reverse                    bool
	InputMethod                int32
	BreakpointParameterization int32
}

type ParmInfo struct {
	ID          ParmHandle
	ParentID    ParmHandle
	Type        int32
	ScriptType  int32
	Permissions int32
	Size        int32
	ChoiceCount int32
	ChoiceListType int32
	Name        StringHandle
	Label       StringHandle
	IntValuesIndex    int32
	FloatValuesIndex  int32
	StringValuesIndex int32
	ChoiceIndex       int32
	InvisibleFlag     bool
	DisabledFlag      bool
	SpareFlag         bool
	JoinNext          bool
	IsChildOfMultiparm bool
	InstanceNum       int32
}

type ParmChoiceInfo struct {
	Label   StringHandle
	Value   StringHandle
	ParentParmID ParmHandle
}

type KeyFrame struct {
	Time  float32
	Value float32
	InTangent  float32
	OutTangent float32
}

type AssetInfo struct {
	NodeID       NodeHandle
	ObjectNodeID NodeHandle
	HasEverCooked bool
	Name         StringHandle
	Label        StringHandle
	FilePath     StringHandle
	Version      StringHandle
	FullOpName   StringHandle
	HelpTextPath StringHandle
	HelpURL      StringHandle
	ObjectCount  int32
	HandleCount  int32
	TransformInputCount int32
	GeoInputCount int32
	GeoOutputCount int32
}

type VolumeInfo struct {
	NameHandle  StringHandle
	Type        int32
	XLength     int32
	YLength     int32
	ZLength     int32
	MinX, MinY, MinZ int32
	TupleSize   int32
	StorageType int32
	TileSize    int32
	HasTaper    bool
	TransformScale float32
}

type VolumeTileInfo struct {
	MinX, MinY, MinZ int32
	IsValid bool
}

type MaterialInfo struct {
	NodeID   NodeHandle
	Exists   bool
	HasChanged bool
}

type ImageInfo struct {
	ImageFileFormatNameHandle StringHandle
	DataFormat int32
	Interleaved bool
	XRes, YRes int32
	Gamma float64
}

type ImageFileFormat struct {
	NameHandle        StringHandle
	DescriptionHandle StringHandle
	DefaultExtensionHandle StringHandle
}

type PDGEventInfo struct {
	NodeID     NodeHandle
	WorkItemID PDGWorkItemID
	DependencyID int32
	CurrentState int32
	LastState    int32
	EventType    int32
}

type PDGWorkItemInfo struct {
	Index       int32
	NumResults  int32
	ResultString string
}

type PDGWorkItemResultInfo struct {
	ResultHandle StringHandle
	ResultTagHandle StringHandle
	TempFile    bool
	Hash        int64
}

type Transform struct {
	Position [3]float32
	RotationQuaternion [4]float32
	Scale    [3]float32
	ShearXY, ShearXZ, ShearYZ float32
	RSTOrder RSTOrder
}

type TransformEuler struct {
	Position [3]float32
	RotationEuler [3]float32
	Scale    [3]float32
	ShearXY, ShearXZ, ShearYZ float32
	RotationOrder XYZOrder
	RSTOrder      RSTOrder
}
