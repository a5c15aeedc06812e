package vocab

// UniversalPOSTag is a Universal Dependencies coarse part-of-speech tag.
type UniversalPOSTag string

const (
	POSAdjective               UniversalPOSTag = "ADJ"
	POSAdposition              UniversalPOSTag = "ADP"
	POSAdverb                  UniversalPOSTag = "ADV"
	POSAuxiliary               UniversalPOSTag = "AUX"
	POSCoordinatingConjunction UniversalPOSTag = "CCONJ"
	POSDeterminer              UniversalPOSTag = "DET"
	POSInterjection            UniversalPOSTag = "INTJ"
	POSNoun                    UniversalPOSTag = "NOUN"
	POSNumeral                 UniversalPOSTag = "NUM"
	POSParticle                UniversalPOSTag = "PART"
	POSPronoun                 UniversalPOSTag = "PRON"
	POSProperNoun              UniversalPOSTag = "PROPN"
	POSPunctuation             UniversalPOSTag = "PUNCT"
	POSSubordinatingConj       UniversalPOSTag = "SCONJ"
	POSSymbol                  UniversalPOSTag = "SYM"
	POSVerb                    UniversalPOSTag = "VERB"
	POSOther                   UniversalPOSTag = "X"
)

var posTags = newLabelSet("universal part-of-speech tag",
	POSAdjective, POSAdposition, POSAdverb, POSAuxiliary,
	POSCoordinatingConjunction, POSDeterminer, POSInterjection, POSNoun,
	POSNumeral, POSParticle, POSPronoun, POSProperNoun, POSPunctuation,
	POSSubordinatingConj, POSSymbol, POSVerb, POSOther,
)

// ParseUniversalPOSTag matches raw exactly. Callers normalize case first.
func ParseUniversalPOSTag(raw string) (UniversalPOSTag, error) { return posTags.parse(raw) }

func UniversalPOSTags() []UniversalPOSTag { return posTags.values() }

// NamedEntityLabel is an OntoNotes named-entity category.
type NamedEntityLabel string

const (
	NERCardinal  NamedEntityLabel = "CARDINAL"
	NERDate      NamedEntityLabel = "DATE"
	NEREvent     NamedEntityLabel = "EVENT"
	NERFac       NamedEntityLabel = "FAC"
	NERGPE       NamedEntityLabel = "GPE"
	NERLanguage  NamedEntityLabel = "LANGUAGE"
	NERLaw       NamedEntityLabel = "LAW"
	NERLoc       NamedEntityLabel = "LOC"
	NERMoney     NamedEntityLabel = "MONEY"
	NERNorp      NamedEntityLabel = "NORP"
	NEROrdinal   NamedEntityLabel = "ORDINAL"
	NEROrg       NamedEntityLabel = "ORG"
	NERPercent   NamedEntityLabel = "PERCENT"
	NERPerson    NamedEntityLabel = "PERSON"
	NERProduct   NamedEntityLabel = "PRODUCT"
	NERQuantity  NamedEntityLabel = "QUANTITY"
	NERTime      NamedEntityLabel = "TIME"
	NERWorkOfArt NamedEntityLabel = "WORK_OF_ART"
)

var nerLabels = newLabelSet("named entity label",
	NERCardinal, NERDate, NEREvent, NERFac, NERGPE, NERLanguage, NERLaw,
	NERLoc, NERMoney, NERNorp, NEROrdinal, NEROrg, NERPercent, NERPerson,
	NERProduct, NERQuantity, NERTime, NERWorkOfArt,
)

func ParseNamedEntityLabel(raw string) (NamedEntityLabel, error) { return nerLabels.parse(raw) }

func NamedEntityLabels() []NamedEntityLabel { return nerLabels.values() }

// DependencyLabel is a ClearNLP dependency relation as emitted by English
// spaCy pipelines, upper-cased. The marker relation is "MARK" as the parser
// emits it; the older spelling "MARKER" is accepted by ParseDependencyLabel
// and normalized to DepMarker.
type DependencyLabel string

const (
	DepRoot                   DependencyLabel = "ROOT"
	DepAdjectivalClause       DependencyLabel = "ACL"
	DepAdjectivalComplement   DependencyLabel = "ACOMP"
	DepAdverbialClause        DependencyLabel = "ADVCL"
	DepAdverbialModifier      DependencyLabel = "ADVMOD"
	DepAgent                  DependencyLabel = "AGENT"
	DepAdjectivalModifier     DependencyLabel = "AMOD"
	DepAppositionalModifier   DependencyLabel = "APPOS"
	DepAttribute              DependencyLabel = "ATTR"
	DepAuxiliary              DependencyLabel = "AUX"
	DepPassiveAuxiliary       DependencyLabel = "AUXPASS"
	DepCaseMarking            DependencyLabel = "CASE"
	DepCoordinatingConj       DependencyLabel = "CC"
	DepClausalComplement      DependencyLabel = "CCOMP"
	DepCompound               DependencyLabel = "COMPOUND"
	DepConjunct               DependencyLabel = "CONJ"
	DepClausalSubject         DependencyLabel = "CSUBJ"
	DepPassiveClausalSubject  DependencyLabel = "CSUBJPASS"
	DepDative                 DependencyLabel = "DATIVE"
	DepUnclassified           DependencyLabel = "DEP"
	DepDeterminer             DependencyLabel = "DET"
	DepDirectObject           DependencyLabel = "DOBJ"
	DepExpletive              DependencyLabel = "EXPL"
	DepInterjection           DependencyLabel = "INTJ"
	DepMarker                 DependencyLabel = "MARK"
	DepMetaModifier           DependencyLabel = "META"
	DepNegation               DependencyLabel = "NEG"
	DepNominalModifier        DependencyLabel = "NMOD"
	DepNPAdverbialModifier    DependencyLabel = "NPADVMOD"
	DepNominalSubject         DependencyLabel = "NSUBJ"
	DepPassiveNominalSubject  DependencyLabel = "NSUBJPASS"
	DepNumericModifier        DependencyLabel = "NUMMOD"
	DepObjectPredicate        DependencyLabel = "OPRD"
	DepParataxis              DependencyLabel = "PARATAXIS"
	DepPrepositionComplement  DependencyLabel = "PCOMP"
	DepPrepositionObject      DependencyLabel = "POBJ"
	DepPossessionModifier     DependencyLabel = "POSS"
	DepPreCorrelativeConj     DependencyLabel = "PRECONJ"
	DepPreDeterminer          DependencyLabel = "PREDET"
	DepPrepositionalModifier  DependencyLabel = "PREP"
	DepParticle               DependencyLabel = "PRT"
	DepPunctuation            DependencyLabel = "PUNCT"
	DepQuantifierModifier     DependencyLabel = "QUANTMOD"
	DepRelativeClauseModifier DependencyLabel = "RELCL"
	DepOpenClausalComplement  DependencyLabel = "XCOMP"
)

var depLabels = newLabelSet("dependency label",
	DepRoot, DepAdjectivalClause, DepAdjectivalComplement, DepAdverbialClause,
	DepAdverbialModifier, DepAgent, DepAdjectivalModifier, DepAppositionalModifier,
	DepAttribute, DepAuxiliary, DepPassiveAuxiliary, DepCaseMarking,
	DepCoordinatingConj, DepClausalComplement, DepCompound, DepConjunct,
	DepClausalSubject, DepPassiveClausalSubject, DepDative, DepUnclassified,
	DepDeterminer, DepDirectObject, DepExpletive, DepInterjection, DepMarker,
	DepMetaModifier, DepNegation, DepNominalModifier, DepNPAdverbialModifier,
	DepNominalSubject, DepPassiveNominalSubject, DepNumericModifier,
	DepObjectPredicate, DepParataxis, DepPrepositionComplement,
	DepPrepositionObject, DepPossessionModifier, DepPreCorrelativeConj,
	DepPreDeterminer, DepPrepositionalModifier, DepParticle, DepPunctuation,
	DepQuantifierModifier, DepRelativeClauseModifier, DepOpenClausalComplement,
)

// ParseDependencyLabel matches raw exactly. Callers normalize case first.
// legacyDepLabels maps retired spellings onto their current relation.
var legacyDepLabels = map[string]DependencyLabel{
	"MARKER": DepMarker,
}

func ParseDependencyLabel(raw string) (DependencyLabel, error) {
	if label, ok := legacyDepLabels[raw]; ok {
		return label, nil
	}
	return depLabels.parse(raw)
}

func DependencyLabels() []DependencyLabel { return depLabels.values() }
