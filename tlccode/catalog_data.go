// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tlccode

// Codes below are transcribed from the `code_enums!` tables in TLC's
// upstream EC.java mapping; names keep the original variant spelling
// (including its handful of typos) so cross-referencing the Java source
// stays easy.

// Exported Code values for every variant that tlcparse/tlcmsg/tlcrun need
// to match on directly. Catalog-only entries (ones nothing switches on by
// name) are registered in init() without a package-level variable.
var (
	ErrNoJavaRuntime       = register(CategoryErrGeneral, 1_000_000, "NoJavaRuntime", "unable to locate java runtime")
	ErrCheckFailedToCheck  = register(CategoryErrGeneral, 3000, "CheckFailedToCheck", "failed to check")
	ErrCheckCouldNotRead   = register(CategoryErrGeneral, 3001, "CheckCouldNotReadTrace", "could not read trace")

	MsgGeneral = register(CategoryMsgGeneral, 1000, "General", "general")

	StatusTlcStarting            = register(CategoryStatus, 2185, "TlcStarting", "[status] starting")
	StatusTlcFinished            = register(CategoryStatus, 2186, "TlcFinished", "[status] finished")
	StatusTlcSanyStart            = register(CategoryStatus, 2220, "TlcSanyStart", "[status] sany start")
	StatusTlcSanyEnd              = register(CategoryStatus, 2219, "TlcSanyEnd", "[status] sany end")
	StatusTlcComputingInit        = register(CategoryStatus, 2189, "TlcComputingInit", "[status] computing init")
	StatusTlcInitGenerated1       = register(CategoryStatus, 2190, "TlcInitGenerated1", "[status] init generated (1)")
	StatusTlcInitGenerated2       = register(CategoryStatus, 2191, "TlcInitGenerated2", "[status] init generated (2)")
	StatusTlcInitGenerated3       = register(CategoryStatus, 2207, "TlcInitGenerated3", "[status] init generated (3)")
	StatusTlcInitGenerated4       = register(CategoryStatus, 2208, "TlcInitGenerated4", "[status] init generated (4)")
	StatusTlcBehaviorUpToThisPoint = register(CategoryStatus, 2121, "TlcBehaviorUpToThisPoint", "[tlc] behavior up to this point")
	StatusTlcCounterExample       = register(CategoryStatus, 2264, "TlcCounterExample", "[tlc msg] counter example")
	StatusTlcSuccess              = register(CategoryStatus, 2193, "TlcSuccess", "[tlc msg] success")

	CexTlcBackToState = register(CategoryTlcCex, 2122, "TlcBackToState", "[tlc cex] back to state")
	CexTlcStuttering  = register(CategoryTlcCex, 2218, "TlcStuttering", "[tlc cex] stuttering")
	CexTlcStatePrint1 = register(CategoryTlcCex, 2216, "TlcStatePrint1", "[tlc cex] state print (1)")
	CexTlcTraceState  = register(CategoryTlcCex, 2217, "TlcTraceState", "[tlc cex] trace state")

	UnsafeInvariantViolatedInitial      = register(CategoryTlcUnsafe, 2107, "TlcInvariantViolatedInitial", "[tlc] invariant violated initial")
	UnsafePropertyViolatedInitial       = register(CategoryTlcUnsafe, 2108, "TlcPropertyViolatedInitial", "[tlc] property violated initial")
	UnsafeStateNotCompletelySpecNext    = register(CategoryTlcUnsafe, 2109, "TlcStateNotCompletelySpecifiedNext", "[tlc] tlc state not completely specified next")
	UnsafeInvariantViolatedBehavior     = register(CategoryTlcUnsafe, 2110, "TlcInvariantViolatedBehavior", "[tlc] invariant violated behavior")
	UnsafeInvariantViolatedLevel        = register(CategoryTlcUnsafe, 2146, "TlcInvariantViolatedLevel", "[tlc] invariant violated level")
	UnsafeActionPropertyViolatedBehavior = register(CategoryTlcUnsafe, 2112, "TlcActionPropertyViolatedBehavior", "[tlc] action property violated behavior")
	UnsafeDeadlockReached               = register(CategoryTlcUnsafe, 2114, "TlcDeadlockReached", "[tlc] deadlock reached")
	UnsafeTemporalPropertyViolated      = register(CategoryTlcUnsafe, 2116, "TlcTemporalPropertyViolated", "[tlc] temporal property violated")

	ProblemTlcNoStatesSatisfyingInit      = register(CategoryTlcProblem, 2118, "TlcNoStatesSatisfyingInit", "[tlc] no states satisfying init")
	ProblemTlcInvariantEvaluationFailed    = register(CategoryTlcProblem, 2111, "TlcInvariantEvaluationFailed", "[tlc] invariant evaluation failed")
	ProblemTlcActionPropertyEvalFailed     = register(CategoryTlcProblem, 2113, "TlcActionPropertyEvaluationFailed", "[tlc] action property evaluation failed")
	ProblemTlcValueAssertFailed            = register(CategoryTlcProblem, 2132, "TlcValueAssertFailed", "[tlc] value assert failed")

	ErrTlcMetadirExists                      = register(CategoryTlcErr, 2100, "TlcMetadirExists", "[tlc] metadir exists")
	ErrTlcMetadirCanNotBeCreated              = register(CategoryTlcErr, 2101, "TlcMetadirCanNotBeCreated", "[tlc] metadir cannot be created")
	ErrTlcInitialState                       = register(CategoryTlcErr, 2102, "TlcInitialState", "[tlc] initial state")
	ErrTlcNestedExpression                   = register(CategoryTlcErr, 2103, "TlcNestedExpression", "[tlc] nested expression")
	ErrTlcAssumptionFalse                    = register(CategoryTlcErr, 2104, "TlcAssumptionFalse", "[tlc] assumption false")
	ErrTlcAssumptionEvaluationError          = register(CategoryTlcErr, 2105, "TlcAssumptionEvaluationError", "[tlc] assumption evaluation error")
	ErrTlcStateNotCompletelySpecifiedInitial = register(CategoryTlcErr, 2106, "TlcStateNotCompletelySpecifiedInitial", "[tlc] state not completely specified initial")
	ErrTlcStatesAndNoNextAction              = register(CategoryTlcErr, 2115, "TlcStatesAndNoNextAction", "[tlc] states and no next action")
	ErrTlcFailedToRecoverNext                = register(CategoryTlcErr, 2117, "TlcFailedToRecoverNext", "[tlc] failed to recover next")
	ErrTlcStringModuleNotFound               = register(CategoryTlcErr, 2119, "TlcStringModuleNotFound", "[tlc] string module not found")
	ErrTlcErrorState                         = register(CategoryTlcErr, 2120, "TlcErrorState", "[tlc] error state")
	ErrTlcStateNotCompletelySpecifiedLive    = register(CategoryTlcErr, 2148, "TlcStateNotCompletelySpecifiedLive", "[tlc] state not completely specified live")
	ErrTlcFailedToRecoverInit                = register(CategoryTlcErr, 2123, "TlcFailedToRecoverInit", "[tlc] failed to recover init")
	ErrTlcReporterDied                       = register(CategoryTlcErr, 2124, "TlcReporterDied", "[tlc] reporter died")
	ErrTlcBug                                = register(CategoryTlcErr, 2128, "TlcBug", "[tlc] bug")
	ErrTlcFingerprintException               = register(CategoryTlcErr, 2147, "TlcFingerprintException", "[tlc] fingerprint exception")
	ErrTlcParsingFailed                      = register(CategoryTlcErr, 3002, "TlcParsingFailed", "[tlc] parsing failed")
	ErrTlcParsingFailed2                     = register(CategoryTlcErr, 2171, "TlcParsingFailed2", "[tlc] parsing failed (2)")
	ErrTlcTooManyPossibleStates              = register(CategoryTlcErr, 2172, "TlcTooManyPossibleStates", "[tlc] too many possible states")
	ErrTlcIntegerTooBig                      = register(CategoryTlcErr, 2265, "TlcIntegerTooBig", "[tlc] integer too big")
	ErrTlcTraceTooLong                       = register(CategoryTlcErr, 2282, "TlcTraceTooLong", "[tlc] trace too long")

	StatsTlcSearchDepth        = register(CategoryTlcNormal, 2194, "TlcSearchDepth", "[tlc msg] search depth")
	StatsTlcStateGraphOutdegree = register(CategoryTlcNormal, 2268, "TlcStateGraphOutdegree", "[tlc msg] state graph outdegree")
	StatsTlcStats              = register(CategoryTlcNormal, 2199, "TlcStats", "[tlc msg] stats")
	StatsTlcProgressStats      = register(CategoryTlcNormal, 2200, "TlcProgressStats", "[tlc msg] progress stats")

	CfgErrorReadingFile = register(CategoryCfg, 5001, "CfgErrorReadingFile", "[cfg] error reading file")
	CfgMissingInit      = register(CategoryCfg, 2231, "TlcConfigMissingInit", "[cfg] config missing init")
	CfgMissingNext      = register(CategoryCfg, 2232, "TlcConfigMissingNext", "[cfg] config missing next")
	CfgNoModules        = register(CategoryCfg, 2245, "TlcNoModules", "[cfg] no modules")
)

func init() {
	registerParamCodes()
	registerParserCodes()
	registerWeirdCodes()
	registerFeatureCodes()
	registerSystemCodes()
	registerClaCodes()
	registerPpCodes()
	registerRemainingTlcErrCodes()
	registerCexAndLiveCodes()
	registerDistributedTlcCodes()
	registerNormalTlcCodes()
	registerRemainingCfgCodes()
}

func registerParamCodes() {
	for _, e := range []struct {
		code int
		name string
		desc string
	}{
		{3100, "CheckParamExpectConfigFilename", "[param] expects config filename"},
		{3101, "CheckParamUsage", "[param] usage"},
		{3102, "CheckParamMissingTlaModule", "[param] missing TLA module"},
		{3103, "CheckParamNeedToSpecifyConfigDir", "[param] need to specify config dir"},
		{3104, "CheckParamWorkerNumberRequired", "[param] worker number required"},
		{3105, "CheckParamWorkerNumberTooSmall", "[param] worker number too small"},
		{3106, "CheckParamWorkerNumberRequired2", "[param] worker number required (2)"},
		{3107, "CheckParamDepthRequired", "[param] depth required"},
		{3108, "CheckParamDepthRequired2", "[param] depth required (2)"},
		{3109, "CheckParamTraceRequired", "[param] trace required"},
		{3110, "CheckParamCoverageRequired", "[param] coverage required"},
		{3111, "CheckParamCoverageRequired2", "[param] coverage required (2)"},
		{3112, "CheckParamCoverageTooSmall", "[param] coverage too small"},
		{3113, "CheckParamUnrecognized", "[param] unrecognized"},
		{3114, "CheckParamTooManyInputFiles", "[param] too many input files"},
	} {
		register(CategoryParam, e.code, e.name, e.desc)
	}
}

func registerParserCodes() {
	register(CategoryParser, 4000, "SanyParserCheck1", "[parser] check 1")
	register(CategoryParser, 4001, "SanyParserCheck2", "[parser] check 2")
	register(CategoryParser, 4002, "SanyParserCheck3", "[parser] check 3")
}

func registerWeirdCodes() {
	register(CategoryWeird, -1, "Unknown", "[??] unknown")
	register(CategoryWeird, -123456, "UnitTest", "[??] unit test")
}

func registerFeatureCodes() {
	register(CategoryFeature, 2156, "TlcFeatureUnsupported", "[feature] unsupported")
	register(CategoryFeature, 2279, "TlcFeatureUnsupportedLivenessSymmetry", "[feature] unsupported liveness symmetry")
	register(CategoryFeature, 2284, "TlcFeatureLivenessConstraints", "[feature] liveness constraints")
}

func registerSystemCodes() {
	for _, e := range []struct {
		code int
		name string
		desc string
	}{
		{1001, "SystemOutOfMemory", "[system] out of memory"},
		{1002, "SystemOutOfMemoryTooManyInit", "[system] out of memory (too many init)"},
		{1003, "SystemOutOfMemoryLiveness", "[system] out of memory (liveness)"},
		{1005, "SystemOutOfMemoryStackOverflow", "[system] out of memory (stack overflow)"},
		{2125, "SystemErrorReadingPool", "[system] error reading pool"},
		{2126, "SystemCheckpointRecoveryCorrupt", "[system] checkpoint recovery corrupt"},
		{2127, "SystemErrorWritingPool", "[system] error writing pool"},
		{2270, "SystemErrorCleaningPool", "[system] error cleaning pool"},
		{2134, "SystemIndexError", "[system] index error"},
		{2135, "SystemStreamEmtpy", "[system] stream empty"},
		{2137, "SystemFileNull", "[system] file null"},
		{2138, "SystemInterrupted", "[system] interrupted"},
		{2160, "SystemUnableNotRenameFlie", "[system] unable not rename file"},
		{2161, "SystemDiskIoErrorForFile", "[system] disk io error for file"},
		{2162, "SystemMetadirExists", "[system] metadir exists"},
		{2163, "SystemMetadirCreationError", "[system] metadir creation error"},
		{2167, "SystemUnableToOpenFile", "[system] unable to open file"},
		{2129, "SystemDiskgraphAccess", "[system] diskgraph access"},
		{2174, "SystemErrorReadingStates", "[system] error reading states"},
		{2175, "SystemErrorWritingStates", "[system] error writing states"},
	} {
		register(CategorySystem, e.code, e.name, e.desc)
	}
}

func registerClaCodes() {
	register(CategoryCla, 1101, "WrongCommandlineParamsSimulator", "[cla] params simulator")
	register(CategoryCla, 1102, "WrongCommandlineParamsTlc", "[cla] params TLC")
}

func registerPpCodes() {
	register(CategoryPp, 2000, "TlcPpParsingValue", "[preproc] parsing value")
	register(CategoryPp, 2001, "TlcPpFormattingValue", "[preproc] formatting value")
}

func registerRemainingTlcErrCodes() {
	for _, e := range []struct {
		code int
		name string
		desc string
	}{
		{2136, "TlcParameterMustBePostfix", "[tlc] parameter must be postfix"},
		{2139, "TlcCouldNotDetermineSubscript", "[tlc] could not determine subscript"},
		{2140, "TlcSubscriptContainNoStateVar", "[tlc] subscript contain no state var"},
		{2141, "TlcWrongTupleFieldName", "[tlc] wrong tuple field name"},
		{2142, "TlcWrongRecordFieldName", "[tlc] wrong record field name"},
		{2143, "TlcUnchangedVariableChanged", "[tlc] unchanged variable changed"},
		{2144, "TlcExceptAppliedToUnknownField", "[tlc] except applied to unknown field"},
		{2145, "TlcModuleTlcgetUndefined", "[tlc] module tlcget undefined"},
		{2154, "TlcModuleValueJavaMethodOverride", "[tlc] module value java method override"},
		{2155, "TlcModuleCompareValue", "[tlc] module compare value"},
		{2157, "TlcModuleTransitiveClosure", "[tlc] module transitive closure"},
		{2158, "TlcModuleCheckMemberOf", "[tlc] module check member of"},
		{2159, "TlcLiveBegraphFailedToConstruct", "[tlc] live begraph failed to construct"},
		{2164, "TlcChooseArgumentsWrong", "[tlc] choose arguments wrong"},
		{2165, "TlcChooseUpperBound", "[tlc] choose upper bound"},
		{2166, "TlcFpValueAlreadyOnDisk", "[tlc] fp value already on disk"},
		{2168, "TlcModuleValueJavaMethodOverrideLoaded", "[tlc] module value java method override loaded"},
		{2169, "TlcModuleArgumentError", "[tlc] module argument error"},
		{2170, "TlcArgumentMismatch", "[tlc] argument mismatch"},
		{2173, "TlcErrorReplacingModules", "[tlc] error replacing modules"},
		{2176, "TlcModuleApplyingToWrongValue", "[tlc] module applying to wrong value"},
		{2177, "TlcModuleBagUnion1", "[tlc] module bag union 1"},
		{2178, "TlcModuleOverflow", "[tlc] module overflow"},
		{2179, "TlcModuleDivisionByZero", "[tlc] module division by zero"},
		{2180, "TlcModuleNullPowerNull", "[tlc] module null power null"},
		{2181, "TlcModuleComputingCardinality", "[tlc] module computing cardinality"},
		{2182, "TlcModuleEvaluating", "[tlc] module evaluating"},
		{2183, "TlcModuleArgumentNotInDomain", "[tlc] module argument not in domain"},
		{2184, "TlcModuleApplyEmptySeq", "[tlc] module apply empty seq"},
		{2215, "TlcExpectedValue", "[tlc] expected value"},
		{2246, "TlcExpectedExpression", "[tlc] expected expression"},
		{2247, "TlcExpectedExpressionInComputing", "[tlc] expected expression in computing"},
		{2248, "TlcExpectedExpressionInComputing2", "[tlc] expected expression in computing (2)"},
		{2260, "TlcEnabledWrongFormula", "[tlc] enabled wrong formula"},
		{2261, "TlcEncounteredFormulaInPredicate", "[tlc] encountered formula in predicate"},
		{2266, "TlcModuleArgumentErrorAn", "[tlc] module argument error an"},
		{2283, "TlcModuleOneArgumentError", "[tlc] module one argument error"},
		{2300, "TlcSymmetrySetTooSmall", "[tlc] symmetry set too small"},
		{2301, "TlcSpecificationFeaturesTemporalQuantifier", "[tlc] specification features temporal quantifier"},
		{2400, "TlcModuleValueJavaMethodOverrideMismatch", "[tlc] module value java method override mismatch"},
		{2402, "TlcModuleValueJavaMethodOverrideModuleMismatch", "[tlc] module value java method override module mismatch"},
		{2403, "TlcModuleValueJavaMethodOverrideIdentidierMismatch", "[tlc] module value java method override identifier mismatch"},
		{2502, "TlcTeSpecGenerationError", "[tlc msg] te spec generation error"},
		{20000, "TlcModuleOverrideStdout", "[tlc] module override stdout"},
	} {
		register(CategoryTlcErr, e.code, e.name, e.desc)
	}
}

// LiveTlcLiveImplied is pulled out of registerCexAndLiveCodes for the same
// by-identity-match reason as the NormalTlc* vars below.
var LiveTlcLiveImplied = register(CategoryTlcLive, 2212, "TlcLiveImplied", "[tlc live] implied")

func registerCexAndLiveCodes() {
	register(CategoryTlcLive, 2213, "TlcLiveCannotHandleFormula", "[tlc live] cannot handle formula")
	register(CategoryTlcLive, 2214, "TlcLiveWrongFormulaFormat", "[tlc live] wrong formula format")
	register(CategoryTlcLive, 2249, "TlcLiveEncounteredActions", "[tlc live] encountered actions")
	register(CategoryTlcLive, 2250, "TlcLiveStatePredicateNonBool", "[tlc live] state predicate non bool")
	register(CategoryTlcLive, 2251, "TlcLiveCannotEvalFormula", "[tlc live] cannot eval formula")
	register(CategoryTlcLive, 2252, "TlcLiveEncounteredNonboolPredicate", "[tlc live] encountered nonbool predicate")
	register(CategoryTlcLive, 2253, "TlcLiveFormulaTautology", "[tlc live] formula tautology")
}

func registerDistributedTlcCodes() {
	for _, e := range []struct {
		code int
		name string
		desc string
	}{
		{7000, "TlcDistributedServerRunning", "[distr tlc] server running"},
		{7001, "TlcDistributedWorkerRegistered", "[distr tlc] worker registered"},
		{7002, "TlcDistributedWorkerDeregistered", "[distr tlc] worker deregistered"},
		{7003, "TlcDistributedWorkerStats", "[distr tlc] worker stats"},
		{7004, "TlcDistributedServerNotRunning", "[distr tlc] server not running"},
		{7005, "TlcDistributedVmVersion", "[distr tlc] vm version"},
		{7006, "TlcDistributedWorkerLost", "[distr tlc] worker lost"},
		{7007, "TlcDistributedExceedBlocksize", "[distr tlc] exceed blocksize"},
		{7008, "TlcDistributedServerFpsetWaiting", "[distr tlc] server fpset waiting"},
		{7009, "TlcDistributedServerFpsetRegistered", "[distr tlc] server fpset registered"},
		{7010, "TlcDistributedServerFinished", "[distr tlc] server finished"},
	} {
		register(CategoryDistributedTlc, e.code, e.name, e.desc)
	}
}

// NormalTlcVersion..NormalTlcCheckingTemporalPropsEnd are pulled out of
// registerNormalTlcCodes's table (as exported vars rather than anonymous
// entries) because tlcrun matches on them by identity, not just by lookup.
var (
	NormalTlcVersion                    = register(CategoryTlcNormal, 2262, "TlcVersion", "[tlc msg] version")
	NormalTlcModeMc                     = register(CategoryTlcNormal, 2187, "TlcModeMc", "[tlc msg] mode mc")
	NormalTlcComputingInitProgress      = register(CategoryTlcNormal, 2269, "TlcComputingInitProgress", "[tlc msg] computing init progress")
	NormalTlcCheckingTemporalProps      = register(CategoryTlcNormal, 2192, "TlcCheckingTemporalProps", "[tlc msg] checking temporal props")
	NormalTlcCheckingTemporalPropsEnd   = register(CategoryTlcNormal, 2267, "TlcCheckingTemporalPropsEnd", "[tlc msg] checking temporal props end")
)

func registerNormalTlcCodes() {
	for _, e := range []struct {
		code int
		name string
		desc string
	}{
		{2271, "TlcModeMcDfs", "[tlc msg] mode mc dfs"},
		{2188, "TlcModeSimu", "[tlc msg] mode simu"},
		{2195, "TlcCheckpointStart", "[tlc msg] checkpoint start"},
		{2196, "TlcCheckpointEnd", "[tlc msg] checkpoint end"},
		{2197, "TlcCheckpointRecoverStart", "[tlc msg] checkpoint recover start"},
		{2198, "TlcCheckpointRecoverEnd", "[tlc msg] checkpoint recover end"},
		{2204, "TlcStatsDfid", "[tlc msg] stats dfid"},
		{2210, "TlcStatsSimu", "[tlc msg] stats simu"},
		{2201, "TlcCoverageStart", "[tlc msg] coverage start"},
		{2202, "TlcCoverageEnd", "[tlc msg] coverage end"},
		{2203, "TlcCheckpointRecoverEndDfid", "[tlc msg] checkpoint recover end dfid"},
		{2205, "TlcProgressStartStatsDfid", "[tlc msg] progress start stats dfid"},
		{2206, "TlcProgressStatsDfid", "[tlc msg] progress stats dfid"},
		{2209, "TlcProgressSimu", "[tlc msg] progress simu"},
		{2211, "TlcFpCompleted", "[tlc msg] fp completed"},
		{2776, "TlcCoverageMismatch", "[tlc msg] coverage mismatch"},
		{2221, "TlcCoverageValue", "[tlc msg] coverage value"},
		{2775, "TlcCoverageValueCost", "[tlc msg] coverage value cost"},
		{2772, "TlcCoverageNext", "[tlc msg] coverage next"},
		{2773, "TlcCoverageInit", "[tlc msg] coverage init"},
		{2774, "TlcCoverageProperty", "[tlc msg] coverage property"},
		{2778, "TlcCoverageConstraint", "[tlc msg] coverage constraint"},
		{2777, "TlcCoverageEndOverhead", "[tlc msg] coverage end overhead"},
		{2401, "TlcEnvironmentJvmGc", "[tlc msg] environment jvm gc"},
		{2501, "TlcTeSpecGenerationComplete", "[tlc msg] te spec generation complete"},
	} {
		register(CategoryTlcNormal, e.code, e.name, e.desc)
	}
}

func registerRemainingCfgCodes() {
	for _, e := range []struct {
		code int
		name string
		desc string
	}{
		{5002, "CfgGeneral", "[cfg] general"},
		{5003, "CfgMissingId", "[cfg] missing id"},
		{5004, "CfgTwiceKeyword", "[cfg] twice keyword"},
		{5005, "CfgExpectId", "[cfg] expect id"},
		{5006, "CfgExpectedSymbol", "[cfg] expected symbol"},
		{2222, "TlcConfigValueNotAssignedToConstantParam", "[cfg] config value not assigned to constant param"},
		{2223, "TlcConfigRhsIdAppearedAfterLhsId", "[cfg] config rhs id appeared after lhs id"},
		{2224, "TlcConfigWrongSubstitution", "[cfg] config wrong substitution"},
		{2225, "TlcConfigWrongSubstitutionNumberOfArgs", "[cfg] config wrong substitution number of args"},
		{2280, "TlcConfigUndefinedOrNoOperator", "[cfg] config undefined or no operator"},
		{2281, "TlcConfigSubstitutionNonConstant", "[cfg] config substitution non constant"},
		{2226, "TlcConfigIdDoesNotAppearInSpec", "[cfg] config id does not appear in spec"},
		{2227, "TlcConfigNotBothSpecAndInit", "[cfg] config not both spec and init"},
		{2228, "TlcConfigIdRequiresNoArg", "[cfg] config id requires no arg"},
		{2229, "TlcConfigSpecifiedNotDefined", "[cfg] config specified not defined"},
		{2230, "TlcConfigIdHasValue", "[cfg] config id has value"},
		{2233, "TlcConfiIdMustNotBeConstant", "[cfg] config id must not be constant"},
		{2234, "TlcConfigOpNoArgs", "[cfg] config op no args"},
		{2235, "TlcConfigOpNotInSpec", "[cfg] config op not in spec"},
		{2236, "TlcConfigOpIsEqual", "[cfg] config op is equal"},
		{2237, "TlcConfigSpecIsTrivial", "[cfg] config spec is trivial"},
		{2238, "TlcCantHandleSubscript", "[cfg] can't handle subscript"},
		{2239, "TlcCantHandleConjunct", "[cfg] can't handle conjunct"},
		{2240, "TlcCantHandleTooManyNextStateRels", "[cfg] can't handle too many next state rels"},
		{2241, "TlcConfigPropertyNotCorrectlyDefined", "[cfg] config property not correctly defined"},
		{2242, "TlcConfigOpArityInconsistent", "[cfg] config op arity inconsistent"},
		{2243, "TlcConfigNoStateType", "[cfg] config no state type"},
		{2244, "TlcCantHandleRealNumbers", "[cfg] can't handle real numbers"},
	} {
		register(CategoryCfg, e.code, e.name, e.desc)
	}
}
