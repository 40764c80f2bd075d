package browser

import "fmt"

// trackLookupJS builds an expression that evaluates to the absolute href of
// the first element matching selector, or "" when it is missing.
func trackLookupJS(selector string) string {
	return fmt.Sprintf(`(() => {
  const el = document.querySelector(%q);
  if (!el) { return ""; }
  return el.href || el.getAttribute("href") || "";
})()`, selector)
}
