package qstore

import "github.com/cayleygraph/qstore/qerrors"

// resolveLiteralDatatypeAndLang implements the datatype-default resolution
// from original_source/src/literal.rs Literal::new:
//
//	(nil, nil)      -> (xsd:string, nil)
//	(Some(dt), nil) -> (dt, nil)
//	(nil, Some(l))  -> (rdf:langString, l)
//	(Some(dt), Some(l)) -> (rdf:langString, l), requiring dt == rdf:langString
func resolveLiteralDatatypeAndLang(datatype, lang *string) (resolvedDatatype string, resolvedLang string, hasLang bool, err error) {
	switch {
	case datatype == nil && lang == nil:
		return XSDStringURI, "", false, nil
	case datatype != nil && lang == nil:
		return *datatype, "", false, nil
	case datatype == nil && lang != nil:
		return RDFLangStringURI, *lang, true, nil
	default: // datatype != nil && lang != nil
		if *datatype != RDFLangStringURI {
			return "", "", false, &qerrors.InconsistentLiteralError{Datatype: *datatype, Lang: *lang}
		}
		return RDFLangStringURI, *lang, true, nil
	}
}
