package table

const wellFormedTable = `<!DOCTYPE html>
<html>
<body>
<table id="sales-2023">
	<caption>Quarterly sales</caption>
	<thead>
		<tr><th>Region</th><th>Q1</th><th>Q2</th><th>Q3</th></tr>
	</thead>
	<tbody>
		<tr><td>North</td><td>2000</td><td>2000</td><td>2000</td></tr>
		<tr><td>South</td><td>12%</td><td>1.5</td><td> 7 </td></tr>
	</tbody>
	<tfoot>
		<tr><td colspan="4">Creation: 15Jan23 Germany</td></tr>
	</tfoot>
</table>
</body>
</html>`

const minimalTable = `<table id="bare">
	<thead><tr><th></th><th>A</th></tr></thead>
	<tbody><tr><td>row</td><td>1</td></tr></tbody>
</table>`
