package ast

// Traverse performs a pre-order walk of the tree rooted at n, calling
// visit on every non-nil node before descending into its children in
// source order. It never revisits a node and never descends into a nil
// child.
func Traverse(n Node, visit func(Node)) {
	if isNilNode(n) {
		return
	}
	visit(n)

	switch v := n.(type) {
	case *Program:
		traverseAll(v.Statements, visit)

	case *BlockStatement:
		traverseAll(v.Statements, visit)

	case *VarStatement:
		for _, decl := range v.Declarations {
			Traverse(decl, visit)
		}

	case *VarDeclarator:
		Traverse(v.Target, visit)
		Traverse(v.Init, visit)

	case *Param:
		Traverse(v.Target, visit)
		Traverse(v.Default, visit)

	case *FunctionDeclaration:
		Traverse(v.Name, visit)
		traverseAll(v.Params, visit)
		Traverse(v.Body, visit)

	case *FunctionExpression:
		Traverse(v.Name, visit)
		traverseAll(v.Params, visit)
		Traverse(v.Body, visit)

	case *ArrowFunctionExpression:
		traverseAll(v.Params, visit)
		Traverse(v.Body, visit)

	case *ReturnStatement:
		Traverse(v.Argument, visit)

	case *IfStatement:
		Traverse(v.Test, visit)
		Traverse(v.Consequent, visit)
		Traverse(v.Alternate, visit)

	case *ForStatement:
		Traverse(v.Init, visit)
		Traverse(v.Test, visit)
		Traverse(v.Update, visit)
		Traverse(v.Body, visit)

	case *ForInStatement:
		Traverse(v.Left, visit)
		Traverse(v.Right, visit)
		Traverse(v.Body, visit)

	case *ForOfStatement:
		Traverse(v.Left, visit)
		Traverse(v.Right, visit)
		Traverse(v.Body, visit)

	case *WhileStatement:
		Traverse(v.Test, visit)
		Traverse(v.Body, visit)

	case *DoWhileStatement:
		Traverse(v.Body, visit)
		Traverse(v.Test, visit)

	case *SwitchStatement:
		Traverse(v.Discriminant, visit)
		for _, c := range v.Cases {
			Traverse(c, visit)
		}

	case *SwitchCase:
		Traverse(v.Test, visit)
		traverseAll(v.Consequent, visit)

	case *TryStatement:
		Traverse(v.Block, visit)
		Traverse(v.Handler, visit)
		Traverse(v.Finalizer, visit)

	case *CatchClause:
		Traverse(v.Param, visit)
		Traverse(v.Body, visit)

	case *WithStatement:
		Traverse(v.Object, visit)
		Traverse(v.Body, visit)

	case *LabeledStatement:
		Traverse(v.Body, visit)

	case *ThrowStatement:
		Traverse(v.Argument, visit)

	case *ExpressionStatement:
		Traverse(v.Expression, visit)

	case *TemplateLiteral:
		traverseAll(v.Quasis, visit)
		traverseAll(v.Expressions, visit)

	case *TaggedTemplateExpression:
		Traverse(v.Tag, visit)
		Traverse(v.Quasi, visit)

	case *AssignmentExpression:
		Traverse(v.Left, visit)
		Traverse(v.Right, visit)

	case *BinaryExpression:
		Traverse(v.Left, visit)
		Traverse(v.Right, visit)

	case *ConditionalExpression:
		Traverse(v.Test, visit)
		Traverse(v.Consequent, visit)
		Traverse(v.Alternate, visit)

	case *SequenceExpression:
		traverseAll(v.Expressions, visit)

	case *UnaryExpression:
		Traverse(v.Argument, visit)

	case *NewExpression:
		Traverse(v.Callee, visit)
		traverseAll(v.Arguments, visit)

	case *UpdateExpression:
		Traverse(v.Argument, visit)

	case *CallExpression:
		Traverse(v.Callee, visit)
		traverseAll(v.Arguments, visit)

	case *MemberExpression:
		Traverse(v.Object, visit)
		Traverse(v.Property, visit)

	case *YieldExpression:
		Traverse(v.Argument, visit)

	case *AwaitExpression:
		Traverse(v.Argument, visit)

	case *SpreadElement:
		Traverse(v.Argument, visit)

	case *ArrayLiteral:
		traverseAll(v.Elements, visit)

	case *Property:
		// A shorthand property's Value is, or wraps, the Key identifier
		// itself, so that identifier is reached through Value alone.
		if _, shared := v.Key.(*Identifier); !v.Shorthand || !shared {
			Traverse(v.Key, visit)
		}
		Traverse(v.Value, visit)

	case *ObjectLiteral:
		traverseAll(v.Properties, visit)

	case *RestElement:
		Traverse(v.Argument, visit)

	case *BindingProperty:
		if _, shared := v.Key.(*Identifier); !v.Shorthand || !shared {
			Traverse(v.Key, visit)
		}
		Traverse(v.Value, visit)

	case *ObjectBindingPattern:
		for _, p := range v.Properties {
			Traverse(p, visit)
		}

	case *ArrayBindingPattern:
		traverseAll(v.Elements, visit)

	case *MethodDefinition:
		Traverse(v.Key, visit)
		Traverse(v.Function, visit)

	case *ClassDeclaration:
		Traverse(v.Name, visit)
		Traverse(v.SuperClass, visit)
		for _, m := range v.Body {
			Traverse(m, visit)
		}

	case *ClassExpression:
		Traverse(v.Name, visit)
		Traverse(v.SuperClass, visit)
		for _, m := range v.Body {
			Traverse(m, visit)
		}

	case *ImportDeclaration:
		for _, s := range v.Specifiers {
			Traverse(s, visit)
		}
		Traverse(v.Source, visit)

	case *ExportDeclaration:
		Traverse(v.Declaration, visit)
		for _, s := range v.Specifiers {
			Traverse(s, visit)
		}
		Traverse(v.Source, visit)
	}
}

func traverseAll[T Node](nodes []T, visit func(Node)) {
	for _, n := range nodes {
		Traverse(n, visit)
	}
}
