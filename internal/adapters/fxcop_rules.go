package adapters

import "github.com/beevik/etree"

// fxcopRule is the descriptive metadata FxCop publishes for one check.
type fxcopRule struct {
	typeName    string
	category    string
	checkID     string
	url         string
	description string
}

// fxcopRuleSet is the rule catalog of one FxCop report. It follows a
// two-phase protocol: the walker fills it from the Rules section before
// any issue is read, then only queries it.
type fxcopRuleSet struct {
	rules map[string]fxcopRule
}

func newFxCopRuleSet() *fxcopRuleSet {
	return &fxcopRuleSet{rules: make(map[string]fxcopRule)}
}

func ruleKey(category, checkID string) string {
	return category + "#" + checkID
}

// addRule registers the rule described by a Rule element. Elements with
// neither category nor check id cannot be looked up and are skipped.
func (s *fxcopRuleSet) addRule(el *etree.Element) {
	rule := fxcopRule{
		typeName: el.SelectAttrValue("TypeName", ""),
		category: el.SelectAttrValue("Category", ""),
		checkID:  el.SelectAttrValue("CheckId", ""),
	}
	if rule.category == "" && rule.checkID == "" {
		return
	}
	if url := el.SelectElement("Url"); url != nil {
		rule.url = url.Text()
	}
	if desc := el.SelectElement("Description"); desc != nil {
		rule.description = desc.Text()
	}
	s.rules[ruleKey(rule.category, rule.checkID)] = rule
}

// get looks up the rule registered for (category, checkID).
func (s *fxcopRuleSet) get(category, checkID string) (fxcopRule, bool) {
	rule, ok := s.rules[ruleKey(category, checkID)]
	return rule, ok
}
