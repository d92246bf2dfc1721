// Package adapters holds the tool-specific report parsers. Every adapter
// normalizes one tool's output schema into model Issues; none of them
// knows about the others.
package adapters

import (
	"context"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/MarkEWaite/analysis-model/internal/model"
	"github.com/MarkEWaite/analysis-model/internal/parser"
)

// FxCopParser parses FxCop XML reports. The schema nests issues several
// levels deep (Target, Module, Namespace, Type, Member, Accessor, plus a
// sibling Resources branch); every level may carry a Messages branch and
// contributes its Name to a dot-joined qualified name that is visible at
// the leaves. A Rules section is loaded into a catalog first and used to
// enrich issue messages at emission time.
//
// Instances are not safe for concurrent use; each Parse call owns a
// fresh catalog and builder.
type FxCopParser struct{}

// NewFxCopParser creates an FxCop report parser.
func NewFxCopParser() *FxCopParser {
	return &FxCopParser{}
}

// Parse implements parser.Parser.
func (p *FxCopParser) Parse(ctx context.Context, src parser.Source) (*model.Report, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, parser.NewParsingError(src, "opening report", err)
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return nil, parser.NewParsingError(src, "reading XML document", err)
	}
	root := doc.SelectElement("FxCopReport")
	if root == nil {
		return nil, parser.NewParsingError(src, "missing FxCopReport root element", nil)
	}

	w := &fxcopWalker{
		ctx:     ctx,
		src:     src,
		report:  model.NewReport(),
		rules:   newFxCopRuleSet(),
		builder: model.NewIssueBuilder(),
	}
	defer w.builder.Close()

	w.parseRules(root)
	if err := w.parseNamespaces(root); err != nil {
		return nil, err
	}
	if err := w.parseTargets(root); err != nil {
		return nil, err
	}
	return w.report, nil
}

// fxcopWalker carries the per-parse state through the recursive descent.
// The qualified name is passed by value down the call chain, never stored.
type fxcopWalker struct {
	ctx     context.Context
	src     parser.Source
	report  *model.Report
	rules   *fxcopRuleSet
	builder *model.IssueBuilder
}

// checkCanceled polls the context; the walker calls it once per Target
// and once per Messages branch, so cancellation is observed within one
// record's work.
func (w *fxcopWalker) checkCanceled() error {
	if err := w.ctx.Err(); err != nil {
		return parser.NewParsingCanceledError(w.src, err)
	}
	return nil
}

func (w *fxcopWalker) parseRules(root *etree.Element) {
	rules := root.SelectElement("Rules")
	if rules == nil {
		return
	}
	for _, rule := range rules.SelectElements("Rule") {
		w.rules.addRule(rule)
	}
}

func (w *fxcopWalker) parseTargets(root *etree.Element) error {
	targets := root.SelectElement("Targets")
	if targets == nil {
		return nil
	}
	for _, target := range targets.SelectElements("Target") {
		if err := w.checkCanceled(); err != nil {
			return err
		}
		if err := w.parseMessages(target, ""); err != nil {
			return err
		}
		if err := w.parseModules(target); err != nil {
			return err
		}
		if err := w.parseResources(target); err != nil {
			return err
		}
	}
	return nil
}

func (w *fxcopWalker) parseResources(target *etree.Element) error {
	resources := target.SelectElement("Resources")
	if resources == nil {
		return nil
	}
	for _, resource := range resources.SelectElements("Resource") {
		if err := w.parseMessages(resource, ""); err != nil {
			return err
		}
	}
	return nil
}

func (w *fxcopWalker) parseModules(target *etree.Element) error {
	modules := target.SelectElement("Modules")
	if modules == nil {
		return nil
	}
	for _, module := range modules.SelectElements("Module") {
		if err := w.parseMessages(module, ""); err != nil {
			return err
		}
		if err := w.parseNamespaces(module); err != nil {
			return err
		}
	}
	return nil
}

// parseNamespaces seeds the qualified-name chain: a namespace's own Name
// starts the accumulation, without a parent prefix.
func (w *fxcopWalker) parseNamespaces(el *etree.Element) error {
	namespaces := el.SelectElement("Namespaces")
	if namespaces == nil {
		return nil
	}
	for _, namespace := range namespaces.SelectElements("Namespace") {
		name := namespace.SelectAttrValue("Name", "")
		if err := w.parseMessages(namespace, name); err != nil {
			return err
		}
		if err := w.parseTypes(namespace, name); err != nil {
			return err
		}
	}
	return nil
}

func (w *fxcopWalker) parseTypes(el *etree.Element, parentName string) error {
	types := el.SelectElement("Types")
	if types == nil {
		return nil
	}
	for _, typ := range types.SelectElements("Type") {
		name := joinQualified(parentName, typ.SelectAttrValue("Name", ""))
		if err := w.parseMessages(typ, name); err != nil {
			return err
		}
		if err := w.parseMembers(typ, name); err != nil {
			return err
		}
	}
	return nil
}

func (w *fxcopWalker) parseMembers(el *etree.Element, parentName string) error {
	members := el.SelectElement("Members")
	if members == nil {
		return nil
	}
	for _, member := range members.SelectElements("Member") {
		if err := w.parseMember(member, parentName); err != nil {
			return err
		}
	}
	return nil
}

func (w *fxcopWalker) parseAccessors(el *etree.Element, parentName string) error {
	accessors := el.SelectElement("Accessors")
	if accessors == nil {
		return nil
	}
	for _, accessor := range accessors.SelectElements("Accessor") {
		if err := w.parseMember(accessor, parentName); err != nil {
			return err
		}
	}
	return nil
}

func (w *fxcopWalker) parseMember(member *etree.Element, parentName string) error {
	name := joinQualified(parentName, member.SelectAttrValue("Name", ""))
	if err := w.parseMessages(member, name); err != nil {
		return err
	}
	return w.parseAccessors(member, name)
}

func (w *fxcopWalker) parseMessages(el *etree.Element, qualifiedName string) error {
	messages := el.SelectElement("Messages")
	if messages == nil {
		return nil
	}
	for _, message := range messages.SelectElements("Message") {
		if err := w.checkCanceled(); err != nil {
			return err
		}
		for _, issue := range message.SelectElements("Issue") {
			w.parseIssue(issue, message, qualifiedName)
		}
	}
	return nil
}

// parseIssue emits exactly one Issue for one Issue element. TypeName,
// Category and CheckId live on the Message element; Level and the
// location attributes live on the Issue element itself. When the Message
// carries no TypeName the accumulated qualified name stands in for it.
func (w *fxcopWalker) parseIssue(issue, message *etree.Element, qualifiedName string) {
	typeName := message.SelectAttrValue("TypeName", "")
	if typeName == "" {
		typeName = qualifiedName
	}
	category := message.SelectAttrValue("Category", "")
	checkID := message.SelectAttrValue("CheckId", "")
	level := issue.SelectAttrValue("Level", "")

	var msg strings.Builder
	rule, found := w.rules.get(category, checkID)
	if found {
		msg.WriteString(`<a href="`)
		msg.WriteString(rule.url)
		msg.WriteString(`">`)
		msg.WriteString(typeName)
		msg.WriteString(`</a>`)
	} else {
		msg.WriteString(typeName)
	}
	msg.WriteString(" - ")
	msg.WriteString(strings.TrimSpace(issue.Text()))

	w.builder.
		SetFileName(joinPath(issue.SelectAttrValue("Path", ""), issue.SelectAttrValue("File", ""))).
		SetLineStart(parseLine(issue.SelectAttrValue("Line", ""))).
		SetCategory(category).
		SetType(checkID).
		SetMessage(msg.String()).
		GuessSeverity(level)
	if found {
		w.builder.SetDescription(rule.description)
	}
	w.report.Add(w.builder.BuildAndClean())
}

// joinQualified extends an accumulated qualified name by one level. Empty
// parts do not extend the chain.
func joinQualified(parent, name string) string {
	switch {
	case name == "":
		return parent
	case parent == "":
		return name
	default:
		return parent + "." + name
	}
}

// joinPath concatenates the Path and File attributes of an Issue node.
// Both absent yields "", so an issue without location stays locationless
// instead of pointing at "/".
func joinPath(dir, file string) string {
	switch {
	case dir == "":
		return file
	case file == "":
		return dir
	default:
		return dir + "/" + file
	}
}

// parseLine converts a line attribute, resolving absent or unparsable
// values to 0.
func parseLine(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
