package core

// Load instantiates a runtime tree from source against registry. It
// locates the tree named "main" and recursively loads it; every other
// named tree in source is reachable only by being invoked as a
// subtree from somewhere under "main".
//
// Load returns (nil, ErrNoMainTree) if source has no tree named
// "main".
func Load(source TreeSource, registry *Registry) (*BehaviorNodeContainer, error) {
	main, ok := source.Find("main")
	if !ok {
		return nil, ErrNoMainTree
	}
	return loadRecurse(main.Root, source, registry)
}

// loadRecurse builds one BehaviorNodeContainer for def. If def.Name
// matches another tree in source, def is a subtree invocation: the
// container wraps a subtreeNode whose single child is that tree's own
// loaded root. Otherwise def.Name must be a registered node type.
func loadRecurse(def TreeDef, source TreeSource, registry *Registry) (*BehaviorNodeContainer, error) {
	var node BehaviorNode
	var children []*BehaviorNodeContainer

	if target, ok := source.Find(def.Name); ok {
		Logf("core: loading %q as a subtree", def.Name)
		ports := make([]PortSpec, len(target.Ports))
		for i, p := range target.Ports {
			ports[i] = PortSpec{Direction: p.Direction, Key: p.Name}
		}
		child, err := loadRecurse(target.Root, source, registry)
		if err != nil {
			return nil, err
		}
		children = []*BehaviorNodeContainer{child}
		node = &subtreeNode{ports: ports, local: NewBlackboard()}
	} else {
		for _, c := range def.Children {
			child, err := loadRecurse(c, source, registry)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

		factory, ok := registry.lookup(def.Name)
		if !ok {
			return nil, &UndefinedNodeError{Name: def.Name}
		}
		Logf("core: loading %q from the registry", def.Name)
		node = factory()
	}

	bbmap := make(BBMap, len(def.PortMaps))
	for _, pm := range def.PortMaps {
		bbmap[pm.NodePort] = pm.Value
	}

	return &BehaviorNodeContainer{
		Name:     def.Name,
		Node:     node,
		BBMap:    bbmap,
		Children: children,
	}, nil
}
