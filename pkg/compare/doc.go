/*
compare picks up to three models from the catalog and lays them out side by
side, either as a terminal table or as a Markdown document.

	sel, err := compare.NewSelection(a, b)
	if err != nil {
		return err
	}
	cmp, err := sel.Compare()
	if err != nil {
		return err
	}
	fmt.Println(cmp.Markdown())
*/
package compare
