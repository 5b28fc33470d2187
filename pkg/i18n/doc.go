// Package i18n renders validation failures in the user's language.
//
// Every validator.ValidationError carries a translation key such as
// "validation.out_of_range" and the values that describe it (field, min,
// max, ...). A Catalog resolves the key for a language and substitutes the
// values into %{name} placeholders:
//
//	catalog, err := i18n.NewCatalog(ctx, i18n.Layered(
//	    i18n.Locales(),
//	    i18n.FileSource{Path: "locales/app.yaml"},
//	))
//	if err != nil {
//	    return err
//	}
//
//	lang := catalog.Match(r.Header.Get("Accept-Language"))
//	messages := catalog.Localize(lang, err) // field -> messages
//
// Translation files are YAML or JSON with languages at the root and nested
// messages below; keys are addressed with dots:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//
// Lookups fall back from a regional language to its base language and then
// to the default language. Failures whose key cannot be resolved keep their
// own message.
package i18n
